package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/modmenu/internal/core/domain"
	"github.com/custodia-labs/modmenu/internal/core/ports/driven"
	"github.com/custodia-labs/modmenu/internal/core/ports/driving"
)

// Ensure OptionService implements the interface.
var _ driving.OptionService = (*OptionService)(nil)

// OptionService gives UIs typed access to option values.
// Changes stay in the store until Commit.
type OptionService struct {
	options     *domain.DescriptorList
	store       driven.OptionStore
	persistence driving.ConfigPersistence
}

// NewOptionService creates a new option service.
func NewOptionService(
	options *domain.DescriptorList,
	store driven.OptionStore,
	persistence driving.ConfigPersistence,
) *OptionService {
	return &OptionService{
		options:     options,
		store:       store,
		persistence: persistence,
	}
}

// Descriptors returns the persisted options in file order.
func (s *OptionService) Descriptors() []domain.OptionDescriptor {
	return s.options.All()
}

// Values returns the current value of every option.
func (s *OptionService) Values() []domain.OptionValue {
	all := s.options.All()
	out := make([]domain.OptionValue, 0, len(all))
	for _, d := range all {
		out = append(out, currentValue(s.store, d))
	}
	return out
}

// Value returns the current value of one option.
func (s *OptionService) Value(name string) (domain.OptionValue, error) {
	d, err := s.lookup(name)
	if err != nil {
		return domain.OptionValue{}, err
	}
	return currentValue(s.store, d), nil
}

// Set parses raw according to the option's kind and stores it.
func (s *OptionService) Set(name, raw string) error {
	d, err := s.lookup(name)
	if err != nil {
		return err
	}

	raw = strings.TrimSpace(raw)
	switch d.Kind() {
	case domain.OptionKindBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidValue, d.Name(), raw)
		}
		s.store.SetBoolean(d.Key(), b)

	case domain.OptionKindEnum:
		c, ok := d.EnumType().Lookup(raw)
		if !ok {
			return fmt.Errorf("%w: %s expects one of %s, got %q",
				domain.ErrInvalidValue, d.Name(), enumChoices(d.EnumType()), raw)
		}
		s.store.SetEnum(d.Key(), c)

	case domain.OptionKindStringSet:
		s.store.SetStringSet(d.Key(), parseSet(raw))
	}
	return nil
}

// Toggle flips a boolean option.
func (s *OptionService) Toggle(name string) error {
	d, err := s.lookupKind(name, domain.OptionKindBoolean)
	if err != nil {
		return err
	}
	s.store.SetBoolean(d.Key(), !currentValue(s.store, d).Bool)
	return nil
}

// Cycle advances an enum option to its next constant.
func (s *OptionService) Cycle(name string) error {
	d, err := s.lookupKind(name, domain.OptionKindEnum)
	if err != nil {
		return err
	}
	s.store.SetEnum(d.Key(), d.EnumType().Next(currentValue(s.store, d).Enum))
	return nil
}

// AddToSet adds values to a string-set option. Blank values are ignored.
func (s *OptionService) AddToSet(name string, values ...string) error {
	d, err := s.lookupKind(name, domain.OptionKindStringSet)
	if err != nil {
		return err
	}
	set := currentValue(s.store, d).Set
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set.Add(v)
		}
	}
	s.store.SetStringSet(d.Key(), set)
	return nil
}

// RemoveFromSet removes values from a string-set option.
func (s *OptionService) RemoveFromSet(name string, values ...string) error {
	d, err := s.lookupKind(name, domain.OptionKindStringSet)
	if err != nil {
		return err
	}
	set := currentValue(s.store, d).Set
	for _, v := range values {
		set.Remove(strings.TrimSpace(v))
	}
	s.store.SetStringSet(d.Key(), set)
	return nil
}

// Reset restores one option to its default.
func (s *OptionService) Reset(name string) error {
	d, err := s.lookup(name)
	if err != nil {
		return err
	}
	s.store.Delete(d.Key())
	return nil
}

// ResetAll restores every option to its default.
func (s *OptionService) ResetAll() {
	for _, d := range s.options.All() {
		s.store.Delete(d.Key())
	}
}

// Commit persists current values and reports any save failure.
func (s *OptionService) Commit() error {
	if s.persistence == nil {
		return fmt.Errorf("commit: persistence not configured")
	}
	s.persistence.Save()
	return s.persistence.LastError()
}

func (s *OptionService) lookup(name string) (domain.OptionDescriptor, error) {
	d, ok := s.options.Lookup(strings.TrimSpace(name))
	if !ok {
		return domain.OptionDescriptor{}, fmt.Errorf("%w: %s", domain.ErrUnknownOption, name)
	}
	return d, nil
}

func (s *OptionService) lookupKind(name string, kind domain.OptionKind) (domain.OptionDescriptor, error) {
	d, err := s.lookup(name)
	if err != nil {
		return d, err
	}
	if d.Kind() != kind {
		return d, fmt.Errorf("%w: %s is a %s option, not %s", domain.ErrInvalidValue, d.Name(), d.Kind(), kind)
	}
	return d, nil
}

// parseSet splits a comma-separated list, dropping blanks.
func parseSet(raw string) domain.StringSet {
	set := domain.NewStringSet()
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			set.Add(part)
		}
	}
	return set
}

func enumChoices(t *domain.EnumType) string {
	constants := t.Constants()
	for i, c := range constants {
		constants[i] = strings.ToLower(c)
	}
	return strings.Join(constants, ", ")
}
