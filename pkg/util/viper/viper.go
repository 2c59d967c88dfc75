package viper

import (
	"bytes"
	"path/filepath"
	"strings"

	spfviper "github.com/spf13/viper"
)

// Config 封装 spf13/viper 实例，对外提供精简的 YAML/JSON 配置加载接口。
type Config struct {
	v *spfviper.Viper
}

// New 创建一个空的 Config。
// 在调用 Unmarshal/UnmarshalKey 之前需要先通过 LoadFile 或 LoadBytes 加载配置。
func New() *Config {
	return &Config{
		v: spfviper.New(),
	}
}

// LoadFile 将 YAML 或 JSON 配置文件加载到 Config 中。
// 文件类型通过扩展名（.yaml/.yml/.json）推断。
func (c *Config) LoadFile(path string) error {
	if c.v == nil {
		c.v = spfviper.New()
	}

	c.v.SetConfigFile(path)
	if typ := formatOf(path); typ != "" {
		c.v.SetConfigType(typ)
	}

	return c.v.ReadInConfig()
}

// LoadBytes 从内存中的 YAML/JSON 数据加载配置。
// format 为 "yaml"、"yml" 或 "json"。
func (c *Config) LoadBytes(data []byte, format string) error {
	if c.v == nil {
		c.v = spfviper.New()
	}
	c.v.SetConfigType(strings.TrimPrefix(strings.ToLower(format), "."))
	return c.v.ReadConfig(bytes.NewReader(data))
}

// IsSet 判断 key 是否存在于已加载的配置中。
func (c *Config) IsSet(key string) bool {
	if c.v == nil {
		return false
	}
	return c.v.IsSet(key)
}

// GetString 返回 key 对应的字符串值，不存在时返回空串。
func (c *Config) GetString(key string) string {
	if c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

// ConfigFileDir 返回已加载配置文件所在目录，用于解析其中的相对路径。
func (c *Config) ConfigFileDir() string {
	if c.v == nil || c.v.ConfigFileUsed() == "" {
		return ""
	}
	return filepath.Dir(c.v.ConfigFileUsed())
}

// Unmarshal 将完整配置反序列化到 dst。
// dst 应为结构体或 map 的指针。
func (c *Config) Unmarshal(dst interface{}) error {
	if c.v == nil {
		return nil
	}
	return c.v.Unmarshal(dst)
}

// UnmarshalKey 将指定 key 对应的子配置反序列化到 dst。
// dst 应为结构体或 map 的指针。
func (c *Config) UnmarshalKey(key string, dst interface{}) error {
	if c.v == nil {
		return nil
	}
	return c.v.UnmarshalKey(key, dst)
}

func formatOf(path string) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		// 让 viper 自行推断类型，或在读取时返回清晰的错误信息。
		return ""
	}
}
