package inmemdb

import (
	"sync"

	"github.com/chayanin/tcasport/core/student"
)

type (
	DB struct {
		student *studentTable
	}

	// studentTable is slice-backed: insertion order is part of the store's
	// contract.
	studentTable struct {
		rows  []student.Student
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		student: &studentTable{rows: make([]student.Student, 0)},
	}
	return db, nil
}
