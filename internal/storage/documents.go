package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Document types accepted at registration.
const (
	DocSelfie = "selfie"
	DocKTP    = "ktp"
	DocKK     = "kk"
	DocCV     = "cv"
)

// DocumentStore writes user documents under a local root directory using the
// bucket convention documents/<userID>/<docType><ext>. One object per
// document type per user; a re-upload overwrites the previous object, so
// retries are idempotent.
type DocumentStore struct {
	root    string
	baseURL string
}

func NewDocumentStore(root, baseURL string) *DocumentStore {
	return &DocumentStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// Save stores one document and returns its public URL. The extension is
// taken from the original filename.
func (s *DocumentStore) Save(userID uint, docType, filename string, r io.Reader) (string, error) {
	switch docType {
	case DocSelfie, DocKTP, DocKK, DocCV:
	default:
		return "", fmt.Errorf("unknown document type %q", docType)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	rel := fmt.Sprintf("documents/%d/%s%s", userID, docType, ext)
	dst := filepath.Join(s.root, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create document dir: %w", err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}

	return s.baseURL + "/" + path.Clean(rel), nil
}

// Root returns the directory documents are served from.
func (s *DocumentStore) Root() string { return s.root }
