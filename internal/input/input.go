// Package input читает тексты головоломок с диска. Текст читается целиком
// до решения; сжатые файлы (.gz, .zst) распаковываются прозрачно.
package input

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/crypto/blake2b"
)

// ErrNotFound ни одного файла для дня не найдено
var ErrNotFound = errors.New("input: not found")

// extensions варианты файла дня в порядке предпочтения
var extensions = []string{".txt", ".txt.gz", ".txt.zst"}

// Provider ищет входные данные в каталоге Dir
type Provider struct {
	Dir string
}

// NewProvider создаёт провайдер для каталога
func NewProvider(dir string) *Provider {
	return &Provider{Dir: dir}
}

// Path путь к первому существующему файлу dayNN.txt[.gz|.zst]
func (p *Provider) Path(day int) (string, error) {
	base := filepath.Join(p.Dir, fmt.Sprintf("day%02d", day))
	for _, ext := range extensions {
		path := base + ext
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: day %d in %s", ErrNotFound, day, p.Dir)
}

// Read читает и нормализует текст дня
func (p *Provider) Read(day int) (string, error) {
	path, err := p.Path(day)
	if err != nil {
		return "", err
	}
	return ReadFile(path)
}

// ReadFile читает файл, распаковывая его по расширению
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("gzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("zstd %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	return Normalize(string(data)), nil
}

// Normalize переводит CRLF в LF и убирает завершающие переводы строк
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimRight(text, "\n")
}

// Digest blake2b-256 нормализованного текста в hex; ключ кэша ответов
func Digest(text string) string {
	sum := blake2b.Sum256([]byte(Normalize(text)))
	return hex.EncodeToString(sum[:])
}
