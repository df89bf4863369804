// Package layout describes the size and alignment of a region of memory.
//
// A Layout is composed from other layouts to describe structured memory:
// extending one layout with another computes the padding and offset needed
// to lay the second value out after the first, the way a struct packs its
// fields.
package layout

import "fmt"

// Layout describes the byte size and power-of-two alignment of a value.
//
// Layouts are presented to an allocator to obtain a matching block of
// memory. The zero value is not useful; construct one with New.
type Layout struct {
	Size  uint64
	Align uint64
}

// New returns a Layout with the given size and alignment. Align must be a
// power of two; a non-power-of-two alignment causes every arithmetic method
// below to produce meaningless results (this package does not validate it
// on every call, only here).
func New(size, align uint64) (Layout, error) {
	if align == 0 || align&(align-1) != 0 {
		return Layout{}, fmt.Errorf("layout: alignment %d is not a power of two", align)
	}
	return Layout{Size: size, Align: align}, nil
}

func alignDown(value, align uint64) uint64 {
	return value & ^(align - 1)
}

func alignUp(value, align uint64) uint64 {
	return alignDown(value+align-1, align)
}

func (l Layout) nextPadding(align uint64) uint64 {
	return alignUp(l.Size, align) - l.Size
}

// AlignTo widens l's alignment to align, keeping the same size. It never
// narrows the alignment: the result's Align is max(l.Align, align).
func (l *Layout) AlignTo(align uint64) {
	if align > l.Align {
		l.Align = align
	}
}

// PadAlign rounds l's size up to a multiple of its own alignment.
func (l *Layout) PadAlign() {
	l.Size += l.nextPadding(l.Align)
}

// Extend grows l so that a value described by other follows it, including
// whatever padding is needed to satisfy other's alignment. It returns the
// offset of other within the extended layout. Trailing padding to conform
// to the combined layout's own alignment is not added automatically; call
// PadAlign once every field has been extended in order.
func (l *Layout) Extend(other Layout) uint64 {
	l.AlignTo(other.Align)
	padding := l.nextPadding(other.Align)

	offset := l.Size + padding
	l.Size = offset + other.Size

	return offset
}

// ExtendPacked grows l so that a value described by other immediately
// follows it, with no padding and without regard for other's alignment.
// Unlike Extend, it reports no offset: with no padding to elide there is
// nothing a caller couldn't compute as the pre-call Size directly.
func (l *Layout) ExtendPacked(other Layout) {
	l.Size += other.Size
}

// ToArray turns l into the layout of an array of count l-shaped elements,
// including the padding needed between elements to satisfy l's own
// alignment. It returns the stride: the byte offset between the start of
// consecutive elements.
func (l *Layout) ToArray(count uint64) uint64 {
	l.PadAlign()
	stride := l.Size
	l.Size = stride * count
	return stride
}

// ToPackedArray turns l into the layout of an array of count l-shaped
// elements with no padding between them.
func (l *Layout) ToPackedArray(count uint64) {
	l.Size *= count
}
