package block

import "fmt"

// Kind identifies the variant of a block.
type Kind uint8

const (
	// KindText is an editable text segment.
	KindText Kind = iota + 1

	// KindImage is an embedded image.
	KindImage
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Block is a unit of document content. It is implemented by TextBlock
// and ImageBlock only.
type Block interface {
	// BlockID returns the block identity.
	BlockID() ID

	// Kind returns the block variant.
	Kind() Kind

	isBlock()
}

// TextBlock is an editable text segment.
type TextBlock struct {
	ID   ID
	Text string

	// Hint is shown by a presenter while Text is empty.
	Hint string
}

// BlockID returns the block identity.
func (b TextBlock) BlockID() ID { return b.ID }

// Kind returns KindText.
func (b TextBlock) Kind() Kind { return KindText }

// Len returns the text length in grapheme clusters.
func (b TextBlock) Len() int { return Len(b.Text) }

// WithText returns a copy of the block carrying text.
func (b TextBlock) WithText(text string) TextBlock {
	b.Text = text
	return b
}

// String returns a debug representation.
func (b TextBlock) String() string {
	return fmt.Sprintf("Text#%d(%q)", b.ID, b.Text)
}

func (TextBlock) isBlock() {}

// ImageBlock is an embedded image.
type ImageBlock struct {
	ID    ID
	Image ImageRef

	// AspectRatio is height/width of the source bitmap, computed once
	// when the block is created.
	AspectRatio float64
}

// NewImageBlock creates an image block and computes its aspect ratio.
func NewImageBlock(id ID, ref ImageRef) ImageBlock {
	return ImageBlock{ID: id, Image: ref, AspectRatio: ref.AspectRatio()}
}

// BlockID returns the block identity.
func (b ImageBlock) BlockID() ID { return b.ID }

// Kind returns KindImage.
func (b ImageBlock) Kind() Kind { return KindImage }

// DisplayHeight returns the height reserved for the image when laid out
// at viewportWidth.
func (b ImageBlock) DisplayHeight(viewportWidth int) int {
	return b.Image.DisplayHeight(viewportWidth)
}

// String returns a debug representation.
func (b ImageBlock) String() string {
	return fmt.Sprintf("Image#%d(%dx%d)", b.ID, b.Image.Width, b.Image.Height)
}

func (ImageBlock) isBlock() {}

// IsText reports whether b is a TextBlock.
func IsText(b Block) bool {
	_, ok := b.(TextBlock)
	return ok
}

// IsImage reports whether b is an ImageBlock.
func IsImage(b Block) bool {
	_, ok := b.(ImageBlock)
	return ok
}
