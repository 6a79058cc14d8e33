// Package importer reads radio4000 JSON exports from local files.
//
// Exports may be plain JSON, gzip (.json.gz), zstd (.json.zst) or lz4
// (.json.lz4). The top level is either an array of records or an object
// keyed by record id, the shape of the Firebase-era (v1) dumps.
package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/tidwall/gjson"
)

// ErrUnsupportedFormat is returned for files that are not .json, .json.gz,
// .json.zst or .json.lz4.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// readExport returns the decompressed contents of path.
func readExport(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json.gz"), strings.HasSuffix(lower, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(lower, ".json.zst"), strings.HasSuffix(lower, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open zstd %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(lower, ".lz4"):
		r = lz4.NewReader(f)
	case strings.HasSuffix(lower, ".json"):
		r = f
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON in %s", path)
	}
	return data, nil
}

// eachRecord calls fn for every record in an export. key is the object key
// for keyed exports and empty for arrays.
func eachRecord(data []byte, fn func(key string, rec gjson.Result)) error {
	root := gjson.ParseBytes(data)
	switch {
	case root.IsArray():
		root.ForEach(func(_, rec gjson.Result) bool {
			if rec.IsObject() {
				fn("", rec)
			}
			return true
		})
	case root.IsObject():
		root.ForEach(func(key, rec gjson.Result) bool {
			if rec.IsObject() {
				fn(key.String(), rec)
			}
			return true
		})
	default:
		return errors.New("export must be a JSON array or object")
	}
	return nil
}

// first returns the first non-empty string among the given field paths.
func first(rec gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := rec.Get(p); v.Exists() && v.Type != gjson.Null {
			if s := strings.TrimSpace(v.String()); s != "" {
				return s
			}
		}
	}
	return ""
}
