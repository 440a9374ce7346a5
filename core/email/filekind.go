package email

import (
	"path/filepath"
	"strings"
)

// FileKind is the closed set of attachment file types the service accepts.
type FileKind uint8

const (
	FileKindJpeg FileKind = iota + 1
	FileKindJpg
	FileKindPng
	FileKindGif
	FileKindTxt
	FileKindPdf
	FileKindDocx
	FileKindXlsx
	FileKindPptx
	FileKindCsv
)

var mimeTypes = map[FileKind]string{
	FileKindJpeg: "image/jpeg",
	FileKindJpg:  "image/jpeg",
	FileKindPng:  "image/png",
	FileKindGif:  "image/gif",
	FileKindTxt:  "text/plain",
	FileKindPdf:  "application/pdf",
	FileKindDocx: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FileKindXlsx: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FileKindPptx: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	FileKindCsv:  "text/csv",
}

var extensions = map[string]FileKind{
	"jpeg": FileKindJpeg,
	"jpg":  FileKindJpg,
	"png":  FileKindPng,
	"gif":  FileKindGif,
	"txt":  FileKindTxt,
	"pdf":  FileKindPdf,
	"docx": FileKindDocx,
	"xlsx": FileKindXlsx,
	"pptx": FileKindPptx,
	"csv":  FileKindCsv,
}

// MIMEType returns the fixed content type for the kind.
// It returns an empty string for values outside the enumeration.
func (k FileKind) MIMEType() string {
	return mimeTypes[k]
}

// Valid reports whether k is one of the declared kinds.
func (k FileKind) Valid() bool {
	_, ok := mimeTypes[k]
	return ok
}

// Extension returns the lower-case file extension without the leading dot.
func (k FileKind) Extension() string {
	for ext, kind := range extensions {
		if kind == k {
			return ext
		}
	}
	return ""
}

func (k FileKind) String() string {
	if ext := k.Extension(); ext != "" {
		return ext
	}
	return "unknown"
}

// FileKindFromName resolves a kind from the extension of a file name.
// Matching is case-insensitive; unsupported extensions report false.
func FileKindFromName(name string) (FileKind, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	kind, ok := extensions[ext]
	return kind, ok
}
