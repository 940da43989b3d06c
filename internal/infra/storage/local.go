package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// 商品画像のローカル保存。パス指定で保存して公開URLを返す。
type LocalImageStore struct {
	dir       string // 保存先ディレクトリ
	publicURL string // 配信時のURLプレフィックス（例: /uploads）
}

// DI
func NewLocalImageStore(dir string, publicURL string) *LocalImageStore {
	return &LocalImageStore{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Save は画像を保存して公開URLを返す。
// ファイル名はUUIDで採番し、元の拡張子だけ引き継ぐ。
func (s *LocalImageStore) Save(filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
	default:
		return "", fmt.Errorf("unsupported image type: %s", ext)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, src); err != nil {
		os.Remove(path)
		return "", err
	}

	return s.publicURL + "/" + name, nil
}

// Dir は静的配信に使う保存先ディレクトリを返す。
func (s *LocalImageStore) Dir() string {
	return s.dir
}
