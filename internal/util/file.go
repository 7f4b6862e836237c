package util

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

// ValidateMimeType 按文件头嗅探 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := io.ReadFull(reader, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// IsExcelFilename 只看扩展名，大小写不敏感
func IsExcelFilename(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slice.Contains(AllowedExcelExtensions, ext)
}

// IsXLSX .xlsx 是 zip 容器，可以在本地预览
func IsXLSX(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".xlsx"
}
