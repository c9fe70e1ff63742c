// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BlockKind selects how a Block is laid out on the page.
type BlockKind string

const (
	// BlockParagraph is wrapped chapter body text.
	BlockParagraph BlockKind = "paragraph"
	// BlockBullet is a single indented, dash-prefixed line.
	BlockBullet BlockKind = "bullet"
	// BlockFormula is a shaded monospaced block.
	BlockFormula BlockKind = "formula"
	// BlockStep is a bold sub-heading followed by a wrapped paragraph.
	BlockStep BlockKind = "step"
	// BlockSpacer advances one line using the last cell height.
	BlockSpacer BlockKind = "spacer"
)

// Valid reports whether k is one of the known block kinds.
func (k BlockKind) Valid() bool {
	switch k {
	case BlockParagraph, BlockBullet, BlockFormula, BlockStep, BlockSpacer:
		return true
	}
	return false
}

// Block is one drawable unit inside a section.
type Block struct {
	// Kind selects the layout: paragraph, bullet, formula, step, spacer.
	Kind BlockKind `json:"kind" yaml:"kind"`

	// Label is the bold heading of a step block (e.g. "Step 1: Design the Floor Plan").
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Text is the body of the block. Spacers carry no text.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Section is a numbered chapter of the report. Its number is its 1-based
// position in Report.Sections.
type Section struct {
	// Title is the chapter label drawn in the title band.
	Title string `json:"title" yaml:"title"`

	// Blocks lists the chapter content in drawing order.
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// Report is the full document: the per-page header lines and the ordered
// chapters.
type Report struct {
	// Title is the bold header line repeated on every page.
	Title string `json:"title" yaml:"title"`

	// Subtitle is the italic header line repeated on every page.
	Subtitle string `json:"subtitle" yaml:"subtitle"`

	// Sections lists the chapters in order.
	Sections []Section `json:"sections" yaml:"sections"`
}

// Paragraph returns a paragraph block.
func Paragraph(text string) Block { return Block{Kind: BlockParagraph, Text: text} }

// Bullet returns a bullet block.
func Bullet(text string) Block { return Block{Kind: BlockBullet, Text: text} }

// Formula returns a formula block.
func Formula(text string) Block { return Block{Kind: BlockFormula, Text: text} }

// Step returns a step block with a bold label and body text.
func Step(label, text string) Block { return Block{Kind: BlockStep, Label: label, Text: text} }

// Spacer returns a spacer block.
func Spacer() Block { return Block{Kind: BlockSpacer} }
