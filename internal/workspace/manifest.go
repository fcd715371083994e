package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// ManifestFile is the project manifest name.
const ManifestFile = "package.json"

// Pair is one key/value entry of an ordered string map.
type Pair struct {
	Key   string
	Value string
}

// Pairs is a string map that keeps insertion order when serialized.
type Pairs []Pair

// Get returns the value for key.
func (p Pairs) Get(key string) (string, bool) {
	for _, e := range p {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Set replaces the value of key in place, or appends it.
func (p Pairs) Set(key, value string) Pairs {
	for i, e := range p {
		if e.Key == key {
			out := append(Pairs(nil), p...)
			out[i].Value = value
			return out
		}
	}
	return append(append(Pairs(nil), p...), Pair{key, value})
}

// Merge sets every pair of add, later values winning.
func (p Pairs) Merge(add Pairs) Pairs {
	out := append(Pairs(nil), p...)
	for _, e := range add {
		out = out.Set(e.Key, e.Value)
	}
	return out
}

// Sorted returns a copy ordered by key.
func (p Pairs) Sorted() Pairs {
	out := append(Pairs(nil), p...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Keys lists the keys in order.
func (p Pairs) Keys() []string {
	keys := make([]string, len(p))
	for i, e := range p {
		keys[i] = e.Key
	}
	return keys
}

func (p Pairs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *Pairs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	var out Pairs
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return err
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("value of %q: %w", key, err)
		}
		out = out.Set(key, value)
	}
	*p = out
	return nil
}

// MergeDependencies merges add into existing and sorts the result by name.
func MergeDependencies(existing, add Pairs) Pairs {
	return existing.Merge(add).Sorted()
}

type field struct {
	key   string
	value json.RawMessage
}

// Manifest is a package.json document. Top-level key order is preserved.
type Manifest struct {
	fields []field
}

// ParseManifest decodes package.json content.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ManifestFile, err)
	}

	m := &Manifest{}
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", ManifestFile, err)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", ManifestFile, err)
		}
		m.setRaw(key, raw)
	}
	return m, nil
}

// Bytes serializes the manifest with two-space indentation and a trailing newline.
func (m *Manifest) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Keys lists top-level keys in document order.
func (m *Manifest) Keys() []string {
	keys := make([]string, len(m.fields))
	for i, f := range m.fields {
		keys[i] = f.key
	}
	return keys
}

// Has reports whether key is present.
func (m *Manifest) Has(key string) bool {
	return m.raw(key) != nil
}

// Get decodes the value of key into v. It reports false when key is absent.
func (m *Manifest) Get(key string, v any) (bool, error) {
	raw := m.raw(key)
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("%s.%s: %w", ManifestFile, key, err)
	}
	return true, nil
}

// Set stores v under key, keeping the position of an existing key.
func (m *Manifest) Set(key string, v any) error {
	raw, err := marshal(v)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", ManifestFile, key, err)
	}
	m.setRaw(key, raw)
	return nil
}

// Name returns the package name.
func (m *Manifest) Name() string {
	var name string
	_, _ = m.Get("name", &name)
	return name
}

// Pairs returns an object-valued key (scripts, dependencies) in file order.
func (m *Manifest) Pairs(key string) (Pairs, error) {
	var p Pairs
	if _, err := m.Get(key, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *Manifest) raw(key string) json.RawMessage {
	for _, f := range m.fields {
		if f.key == key {
			return f.value
		}
	}
	return nil
}

func (m *Manifest) setRaw(key string, raw json.RawMessage) {
	for i, f := range m.fields {
		if f.key == key {
			m.fields[i].value = raw
			return
		}
	}
	m.fields = append(m.fields, field{key: key, value: raw})
}

// ReadManifest loads package.json from dir.
func ReadManifest(dir string) (*Manifest, error) {
	content, err := ReadFile(dir, ManifestFile)
	if err != nil {
		return nil, err
	}
	return ParseManifest([]byte(content))
}

// UpdateManifest reads package.json, applies fn and writes it back.
func UpdateManifest(ctx context.Context, dir string, fn func(*Manifest) error) error {
	_, err := UpdateFile(ctx, dir, ManifestFile, func(content string) (string, error) {
		m, err := ParseManifest([]byte(content))
		if err != nil {
			return "", err
		}
		if err := fn(m); err != nil {
			return "", err
		}
		out, err := m.Bytes()
		if err != nil {
			return "", err
		}
		return string(out), nil
	})
	return err
}

// AddDependencies merges deps into dependencies (or devDependencies) and
// re-sorts the whole map.
func AddDependencies(ctx context.Context, dir string, deps Pairs, dev bool) error {
	key := "dependencies"
	if dev {
		key = "devDependencies"
	}
	return UpdateManifest(ctx, dir, func(m *Manifest) error {
		existing, err := m.Pairs(key)
		if err != nil {
			return err
		}
		return m.Set(key, MergeDependencies(existing, deps))
	})
}

// AddScripts merges scripts, keeping existing script order.
func AddScripts(ctx context.Context, dir string, scripts Pairs) error {
	return UpdateManifest(ctx, dir, func(m *Manifest) error {
		existing, err := m.Pairs("scripts")
		if err != nil {
			return err
		}
		return m.Set("scripts", existing.Merge(scripts))
	})
}

// marshal encodes v as compact JSON without HTML escaping, so scripts like
// "a && b" stay readable.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}
