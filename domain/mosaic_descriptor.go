package domain

// MosaicDescriptor is the free text description of a mosaic.
type MosaicDescriptor struct {
	text string
}

func NewMosaicDescriptor(text string) MosaicDescriptor {
	return MosaicDescriptor{text: text}
}

func (d MosaicDescriptor) String() string {
	return d.text
}
