package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/modmenu/internal/core/domain"
	"github.com/custodia-labs/modmenu/internal/core/ports/driven"
	"github.com/custodia-labs/modmenu/internal/core/ports/driving"
	"github.com/custodia-labs/modmenu/internal/logger"
)

// Ensure ConfigPersistence implements the interface.
var _ driving.ConfigPersistence = (*ConfigPersistence)(nil)

// ConfigPersistence moves option values between the option store and the config file.
//
// Load and Save never return errors: failures are logged and leave the store
// (on load) or the file (on save) as they were. LastError exposes the outcome of
// the most recent call. Calls are serialized, so a file watcher and a UI can
// share one instance.
type ConfigPersistence struct {
	mu      sync.Mutex
	options *domain.DescriptorList
	store   driven.OptionStore
	file    driven.ConfigFile
	cache   driven.CacheInvalidator
	lastErr error
}

// NewConfigPersistence creates a persistence service.
// cache may be nil.
func NewConfigPersistence(
	options *domain.DescriptorList,
	store driven.OptionStore,
	file driven.ConfigFile,
	cache driven.CacheInvalidator,
) *ConfigPersistence {
	return &ConfigPersistence{
		options: options,
		store:   store,
		file:    file,
		cache:   cache,
	}
}

// Initialize creates the file from current values if it is missing,
// otherwise loads it.
func (p *ConfigPersistence) Initialize() {
	p.mu.Lock()
	defer p.mu.Unlock()

	logger.Section("Config")
	if !p.file.Exists() {
		logger.Info("no config file at %s, writing defaults", p.file.Path())
		p.finish("save", p.save())
		return
	}
	p.finish("load", p.load())
}

// Load reads the file into the option store.
func (p *ConfigPersistence) Load() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finish("load", p.load())
}

// Save writes the option store to the file.
func (p *ConfigPersistence) Save() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finish("save", p.save())
}

// LastError returns the failure from the most recent operation, or nil.
func (p *ConfigPersistence) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Path returns the config file path.
func (p *ConfigPersistence) Path() string {
	return p.file.Path()
}

func (p *ConfigPersistence) finish(op string, err error) {
	p.lastErr = err
	if err == nil {
		logger.Debug("%s %s: ok", op, p.file.Path())
		return
	}

	fields := map[string]any{"path": p.file.Path(), "kind": errorKind(err)}
	if op == "load" {
		logger.ErrorFields(fields, "couldn't load configuration file; keeping current values: %v", err)
	} else {
		logger.ErrorFields(fields, "couldn't save configuration file: %v", err)
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrFileAccess):
		return "file_access"
	case errors.Is(err, domain.ErrParse):
		return "parse"
	case errors.Is(err, domain.ErrFieldAccess):
		return "field_access"
	case errors.Is(err, domain.ErrWrite):
		return "write"
	default:
		return "unknown"
	}
}

// load decodes the whole file before touching the store, so a parse
// failure leaves every value as it was.
func (p *ConfigPersistence) load() error {
	if !p.file.Exists() {
		return fmt.Errorf("load: %w: %s does not exist", domain.ErrFileAccess, p.file.Path())
	}

	doc, err := p.file.Read()
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	applied := 0
	for _, d := range p.options.All() {
		raw, ok := doc[d.Name()]
		if !ok {
			continue
		}
		if p.apply(d, raw) {
			applied++
		} else {
			logger.Debug("ignoring %s: %T does not fit a %s option", d.Name(), raw, d.Kind())
		}
	}

	logger.Debug("loaded %d of %d options from %s", applied, p.options.Len(), p.file.Path())
	return nil
}

// apply stores raw for d if it has the right shape.
func (p *ConfigPersistence) apply(d domain.OptionDescriptor, raw any) bool {
	switch d.Kind() {
	case domain.OptionKindBoolean:
		b, ok := raw.(bool)
		if !ok {
			return false
		}
		p.store.SetBoolean(d.Key(), b)
		return true

	case domain.OptionKindStringSet:
		set, ok := toStringSet(raw)
		if !ok {
			return false
		}
		p.store.SetStringSet(d.Key(), set)
		return true

	case domain.OptionKindEnum:
		s, ok := raw.(string)
		if !ok {
			return false
		}
		c, found := d.EnumType().Lookup(s)
		if !found {
			return false
		}
		p.store.SetEnum(d.Key(), c)
		return true

	default:
		return false
	}
}

// toStringSet converts a decoded array. Non-string elements are skipped.
func toStringSet(raw any) (domain.StringSet, bool) {
	switch v := raw.(type) {
	case []string:
		return domain.NewStringSet(v...), true
	case []any:
		set := make(domain.StringSet, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				set.Add(s)
			}
		}
		return set, true
	default:
		return nil, false
	}
}

func (p *ConfigPersistence) save() error {
	// Invalidate before anything can fail.
	if p.cache != nil {
		p.cache.InvalidateCache()
	}

	doc, err := p.document()
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	if err := p.file.Write(doc); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// document serializes every option's current value.
func (p *ConfigPersistence) document() (map[string]any, error) {
	doc := make(map[string]any, p.options.Len())
	for _, d := range p.options.All() {
		v := currentValue(p.store, d)
		switch d.Kind() {
		case domain.OptionKindBoolean:
			doc[d.Name()] = v.Bool
		case domain.OptionKindEnum:
			name, ok := d.EnumType().SerializedName(v.Enum)
			if !ok {
				return nil, fmt.Errorf("%w: %s holds %q, not a constant of %s",
					domain.ErrFieldAccess, d.Key(), v.Enum, d.EnumType().Name())
			}
			doc[d.Name()] = name
		case domain.OptionKindStringSet:
			doc[d.Name()] = v.Set.Sorted()
		}
	}
	return doc, nil
}

// currentValue reads d from the store, falling back to its default when unset.
func currentValue(store driven.OptionStore, d domain.OptionDescriptor) domain.OptionValue {
	v := domain.OptionValue{Descriptor: d}
	set := store.Has(d.Key())

	switch d.Kind() {
	case domain.OptionKindBoolean:
		v.Bool = d.DefaultBool()
		if set {
			v.Bool = store.GetBoolean(d.Key())
		}
	case domain.OptionKindEnum:
		v.Enum = d.DefaultEnum()
		if set {
			v.Enum = store.GetEnum(d.Key())
		}
	case domain.OptionKindStringSet:
		v.Set = d.DefaultSet()
		if set {
			v.Set = store.GetStringSet(d.Key())
		}
		if v.Set == nil {
			v.Set = domain.NewStringSet()
		}
	}
	return v
}
