// Package inxi parses the JSON document emitted by the inxi hardware probe
// into the normalized model. Parsing is pure: no commands run here, live
// enrichment is layered on afterwards by the enrich package.
package inxi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/zeebo/blake3"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// Parser turns raw probe output into the normalized hardware model. Parses
// are memoized on a content hash of the input bytes, so re-submitting the
// same probe output does not redo the work. The zero value is not usable,
// call NewParser.
type Parser struct {
	mu    sync.Mutex
	cache map[[32]byte][]byte
}

// NewParser returns a parser with an empty memo cache.
func NewParser() *Parser {
	return &Parser{cache: make(map[[32]byte][]byte)}
}

// ClearCache drops all memoized parses.
func (p *Parser) ClearCache() {
	p.mu.Lock()
	p.cache = make(map[[32]byte][]byte)
	p.mu.Unlock()
}

// ParseBytes decodes raw probe JSON and parses it into the normalized
// model. Cache hits decode to a fresh copy, so callers may mutate the
// result freely.
func (p *Parser) ParseBytes(raw []byte) (*model.HardwareInfo, error) {
	key := blake3.Sum256(raw)

	p.mu.Lock()
	memo, hit := p.cache[key]
	p.mu.Unlock()
	if hit {
		hw := model.NewHardwareInfo()
		if err := json.Unmarshal(memo, hw); err != nil {
			return nil, fmt.Errorf("decode memoized parse: %w", err)
		}
		return hw, nil
	}

	doc, err := DecodeDocument(raw)
	if err != nil {
		return nil, err
	}
	hw := p.ParseDocument(doc)

	memo, err = json.Marshal(hw)
	if err != nil {
		return nil, fmt.Errorf("memoize parse: %w", err)
	}
	p.mu.Lock()
	p.cache[key] = memo
	p.mu.Unlock()
	return hw, nil
}

// DecodeDocument decodes probe JSON into its section list. Numbers stay in
// their literal form as json.Number. Valid JSON of the wrong shape (not an
// array of objects) decodes to an empty document; only syntactically broken
// input is an error.
func DecodeDocument(raw []byte) (model.RawDocument, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode probe output: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode probe output: trailing data after document")
	}
	list, ok := root.([]any)
	if !ok {
		return nil, nil
	}
	doc := make(model.RawDocument, 0, len(list))
	for _, el := range list {
		if sec, ok := el.(map[string]any); ok {
			doc = append(doc, sec)
		}
	}
	return doc, nil
}

// sectionRule routes one probe section to its parser.
type sectionRule struct {
	match string
	apply func(hw *model.HardwareInfo, value any, doc model.RawDocument)
}

// sectionRules is tried top to bottom against the cleaned section name; the
// first substring match wins and sections matching no rule are dropped.
// Partition and Swap sections deliberately have no rule of their own: the
// Drives handler receives the whole document and folds them in.
var sectionRules = []sectionRule{
	{"CPU", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.CPU = parseCPU(asItems(v)) }},
	{"Graphics", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.GPU = parseGPU(asItems(v)) }},
	{"Memory", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.Memory = parseMemory(asItems(v)) }},
	{"Audio", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.Audio = parseAudio(asItems(v)) }},
	{"Network", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.Network = parseNetwork(asItems(v)) }},
	{"Drives", func(hw *model.HardwareInfo, v any, doc model.RawDocument) { hw.Disk = parseDisk(asItems(v), doc) }},
	{"System", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.System = parseSystem(asItems(v)) }},
	{"Machine", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.Machine = parseMachine(asItems(v)) }},
	{"Battery", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.Battery = parseBattery(asItems(v)) }},
	{"Sensors", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.Sensors = parseSensors(asItems(v)) }},
	{"Info", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { mergeInfo(&hw.System, asItems(v)) }},
	{"Processes", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.Processes = parseProcesses(asItems(v)) }},
	{"Repos", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.Repos = parseRepos(v) }},
	{"USB", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.USB = parseUSB(asItems(v)) }},
	{"Bluetooth", func(hw *model.HardwareInfo, v any, _ model.RawDocument) { hw.Bluetooth = parseBluetooth(asItems(v)) }},
}

// ParseDocument parses a decoded section list into the normalized model.
// Every known category is present in the result even when its section never
// appears; an empty or malformed document yields the pre-seeded schema.
func (p *Parser) ParseDocument(doc model.RawDocument) *model.HardwareInfo {
	hw := model.NewHardwareInfo()
	if len(doc) == 0 {
		log.Warn().Msg("probe document empty or not a section list")
		hw.PCI = ExtractPCIDevices(hw)
		return hw
	}

	for _, section := range doc {
		for _, rawName := range sortedKeys(section) {
			name := CleanKey(rawName)
			value := section[rawName]
			for _, rule := range sectionRules {
				if strings.Contains(name, rule.match) {
					rule.apply(hw, value, doc)
					break
				}
			}
		}
	}

	hw.PCI = ExtractPCIDevices(hw)
	return hw
}

// asItems coerces a section value to its item list, dropping entries that
// are not objects.
func asItems(v any) []model.RawItem {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]model.RawItem, 0, len(list))
	for _, el := range list {
		if m, ok := el.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}
