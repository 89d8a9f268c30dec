package mediainfo

// Property is one raw track attribute. A nil Value means the element was
// present but empty, which is different from the key being missing.
type Property struct {
	Key   string
	Value *string
}

// Properties is an ordered, duplicate-free attribute set. Keys keep the
// position they were first inserted at; setting an existing key replaces the
// value in place.
type Properties struct {
	keys   []string
	values map[string]*string
}

func NewProperties(pairs ...Property) *Properties {
	p := &Properties{values: make(map[string]*string, len(pairs))}
	for _, pair := range pairs {
		p.Set(pair.Key, pair.Value)
	}
	return p
}

func (p *Properties) Set(key string, value *string) {
	if p.values == nil {
		p.values = map[string]*string{}
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

func (p *Properties) SetText(key, value string) {
	p.Set(key, &value)
}

// Get returns the text of key. Missing keys and empty values both report
// false.
func (p *Properties) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	value := p.values[key]
	if value == nil {
		return "", false
	}
	return *value, true
}

// Value returns the raw value of key, nil when missing or empty.
func (p *Properties) Value(key string) *string {
	if p == nil {
		return nil
	}
	return p.values[key]
}

func (p *Properties) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p.values[key]
	return ok
}

func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

func (p *Properties) Pairs() []Property {
	if p == nil {
		return nil
	}
	pairs := make([]Property, 0, len(p.keys))
	for _, key := range p.keys {
		pairs = append(pairs, Property{Key: key, Value: p.values[key]})
	}
	return pairs
}

func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

func (p *Properties) Empty() bool {
	return p.Len() == 0
}
