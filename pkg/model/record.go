package model

// ExtractedRecord is a labelled address pulled out of resolver output.
type ExtractedRecord struct {
	Label   string
	Address string
}

// ScanSession describes one scanner run and the file its output is teed into.
type ScanSession struct {
	Target string
	Path   string
	Lines  int
}
