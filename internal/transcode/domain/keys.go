package domain

import (
	"net/url"
	"strings"
)

// DerivedKeys definition keys derived from one object key
type DerivedKeys struct {
	SourceKey       string // decoded key, full path + extension
	OutputKeyPrefix string // SourceKey cut at the first "."
	GroupKey        string // first "/" segment of OutputKeyPrefix
}

// DecodeObjectKey 先把 "+" 換成空白，再做 percent-decode。
// A malformed escape leaves the "+"-replaced key as is.
func DecodeObjectKey(rawKey string) string {
	spaced := strings.ReplaceAll(rawKey, "+", " ")
	decoded, err := url.PathUnescape(spaced)
	if err != nil {
		return spaced
	}
	return decoded
}

// DeriveKeys derive source key, output prefix and group key from a raw notification key
func DeriveKeys(rawKey string) DerivedKeys {
	sourceKey := DecodeObjectKey(rawKey)

	// 去掉副檔名，只保留第一個 "." 之前
	outputKeyPrefix, _, _ := strings.Cut(sourceKey, ".")

	// 同一支影片所有 rendition 共用的資料夾名稱
	groupKey, _, _ := strings.Cut(outputKeyPrefix, "/")

	return DerivedKeys{
		SourceKey:       sourceKey,
		OutputKeyPrefix: outputKeyPrefix,
		GroupKey:        groupKey,
	}
}
