// Package seed 提供苦路祈祷文的初始数据。
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"via-sacra/internal/domain"
)

//go:embed via_sacra_data.json
var defaultData []byte

// Default 解析内嵌的默认种子数据
func Default() (*domain.ContentSeed, error) {
	return Parse(defaultData)
}

// LoadFile 从磁盘读取种子文件；path 为空时使用内嵌数据
func LoadFile(path string) (*domain.ContentSeed, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse 解析 JSON 种子数据
func Parse(raw []byte) (*domain.ContentSeed, error) {
	var data domain.ContentSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}
