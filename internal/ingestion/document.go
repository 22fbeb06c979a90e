package ingestion

// minExtractableChars is the threshold under which a document is
// flagged as likely scanned (no usable text layer).
const minExtractableChars = 50

// ImageDescriptor describes one embedded image reported by the document
// decoder. The extraction core never reads image bytes; the descriptor
// exists so a photo-localization collaborator can consume them.
type ImageDescriptor struct {
	Page   int    `json:"page"`
	Format string `json:"format,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Document is what the ingestion collaborator hands to the extraction
// pipeline: cleaned full text, per-page text, a low-text flag, and
// descriptors for any embedded images.
type Document struct {
	SourceFile string
	Text       string
	Pages      []string
	Images     []ImageDescriptor
	// LowText signals fewer than 50 extractable characters, i.e. the
	// document is likely a scan. The caller decides what to do with it;
	// the core still runs on whatever text there is.
	LowText bool
}

// NewDocument builds a Document from decoder output and derives the
// LowText flag from the cleaned text length.
func NewDocument(sourceFile, text string, pages []string, images []ImageDescriptor) *Document {
	return &Document{
		SourceFile: sourceFile,
		Text:       text,
		Pages:      pages,
		Images:     images,
		LowText:    len(text) < minExtractableChars,
	}
}
