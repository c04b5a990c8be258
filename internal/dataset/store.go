package dataset

import (
	"fmt"
	"sync"
)

type lazyTable struct {
	table *Table
	err   error
	once  sync.Once
}

// Store hands out one immutable table per kind. Tables are loaded on first
// use and shared by every caller after that.
type Store struct {
	sources map[Kind]Source
	tables  map[Kind]*lazyTable
}

func NewStore(sources map[Kind]Source) *Store {
	s := Store{
		sources: map[Kind]Source{},
		tables:  map[Kind]*lazyTable{},
	}
	for _, kind := range Kinds {
		s.sources[kind] = sources[kind]
		s.tables[kind] = &lazyTable{}
	}
	return &s
}

func (s *Store) lazy(kind Kind) (*lazyTable, error) {
	lt, ok := s.tables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown dataset kind: %s", kind)
	}
	return lt, nil
}

// Table returns the table for kind, loading it if this is the first call.
func (s *Store) Table(kind Kind) (*Table, error) {
	lt, err := s.lazy(kind)
	if err != nil {
		return nil, err
	}
	lt.once.Do(func() {
		lt.table, lt.err = Load(kind, s.sources[kind])
	})
	return lt.table, lt.err
}

// Init loads the table for kind up front. It fails with InitializationError
// if the table was already loaded, either by Init or by Table.
func (s *Store) Init(kind Kind) (*Table, error) {
	lt, err := s.lazy(kind)
	if err != nil {
		return nil, err
	}
	initialized := true
	lt.once.Do(func() {
		initialized = false
		lt.table, lt.err = Load(kind, s.sources[kind])
	})
	if initialized {
		return nil, &InitializationError{Kind: kind}
	}
	return lt.table, lt.err
}
