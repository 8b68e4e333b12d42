package asymcrypto

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mahdiidarabi/asymcrypto/pkg/group"
)

// ItemParser reads batch items from a source.
type ItemParser interface {
	// ParseItems parses the items in source.
	ParseItems(source string) ([]Item, error)
}

// Fields names the columns (CSV) or keys (JSON) of a batch file. Empty names
// fall back to the defaults.
type Fields struct {
	Scheme    string // default: "scheme"
	PublicKey string // default: "public_key"
	Message   string // default: "message"
	Signature string // default: "signature"
}

func (f Fields) withDefaults() Fields {
	if f.Scheme == "" {
		f.Scheme = "scheme"
	}
	if f.PublicKey == "" {
		f.PublicKey = "public_key"
	}
	if f.Message == "" {
		f.Message = "message"
	}
	if f.Signature == "" {
		f.Signature = "signature"
	}
	return f
}

// JSONParser parses batch items from a JSON file.
//
// Expected format:
//
//	[
//	  {"scheme": "sm2", "public_key": "03...", "message": "hello", "signature": "..."},
//	  {"scheme": "ecdsa", "public_key": "0x02...", "message": "0x68656c6c6f", "signature": "0x..."}
//	]
//
// Public keys and signatures are hex. A message is taken as hex when it has a
// 0x prefix and as UTF-8 text otherwise. Items without a scheme use
// DefaultScheme.
type JSONParser struct {
	Fields        Fields
	DefaultScheme Scheme
}

// ParseItems implements ItemParser.
func (p *JSONParser) ParseItems(jsonFile string) ([]Item, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	var records []map[string]any
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	f := p.Fields.withDefaults()
	items := make([]Item, 0, len(records))
	for i, rec := range records {
		get := func(key string) (string, bool) {
			v, ok := rec[key]
			if !ok {
				return "", false
			}
			s, ok := v.(string)
			return s, ok
		}
		scheme, _ := get(f.Scheme)
		pub, ok := get(f.PublicKey)
		if !ok {
			return nil, fmt.Errorf("item %d: missing %s field", i, f.PublicKey)
		}
		msg, ok := get(f.Message)
		if !ok {
			return nil, fmt.Errorf("item %d: missing %s field", i, f.Message)
		}
		sig, ok := get(f.Signature)
		if !ok {
			return nil, fmt.Errorf("item %d: missing %s field", i, f.Signature)
		}

		item, err := buildItem(scheme, p.DefaultScheme, pub, msg, sig)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// CSVParser parses batch items from a CSV file with a header row. Values are
// interpreted as in JSONParser.
type CSVParser struct {
	Fields        Fields
	DefaultScheme Scheme
}

// ParseItems implements ItemParser.
func (p *CSVParser) ParseItems(csvFile string) ([]Item, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	f := p.Fields.withDefaults()
	idx := map[string]int{}
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	for _, required := range []string{f.PublicKey, f.Message, f.Signature} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	schemeIdx, hasScheme := idx[f.Scheme]

	var items []Item
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		scheme := ""
		if hasScheme {
			scheme = record[schemeIdx]
		}
		item, err := buildItem(scheme, p.DefaultScheme,
			record[idx[f.PublicKey]], record[idx[f.Message]], record[idx[f.Signature]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// ParserForFile picks a parser from the file extension.
func ParserForFile(path string, defaultScheme Scheme) ItemParser {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return &CSVParser{DefaultScheme: defaultScheme}
	}
	return &JSONParser{DefaultScheme: defaultScheme}
}

func buildItem(scheme string, fallback Scheme, pub, msg, sig string) (Item, error) {
	if scheme == "" {
		scheme = string(fallback)
	}
	s, err := ParseScheme(scheme)
	if err != nil {
		return Item{}, err
	}
	pubBytes, err := group.DecodeHex(pub)
	if err != nil {
		return Item{}, fmt.Errorf("failed to parse public key: %w", err)
	}
	sigBytes, err := group.DecodeHex(sig)
	if err != nil {
		return Item{}, fmt.Errorf("failed to parse signature: %w", err)
	}
	msgBytes, err := parseMessage(msg)
	if err != nil {
		return Item{}, fmt.Errorf("failed to parse message: %w", err)
	}
	return Item{Scheme: s, PublicKey: pubBytes, Message: msgBytes, Signature: sigBytes}, nil
}

func parseMessage(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return group.DecodeHex(s)
	}
	return []byte(s), nil
}
