// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer. The website is almost
// entirely read-only; contact enquiries are the one write path worth
// persisting.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"swapstation/internal/models"
)

// EnquiryStore handles contact-enquiry persistence.
type EnquiryStore struct {
	db *sql.DB
}

// NewEnquiryStore creates a new EnquiryStore with the given database connection.
func NewEnquiryStore(db *sql.DB) *EnquiryStore {
	return &EnquiryStore{db: db}
}

// Create inserts a new enquiry and returns it with the generated ID and
// timestamp. Name, email, and message are required.
func (s *EnquiryStore) Create(name, email, subject, message string) (*models.Enquiry, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("enquiry requires name, email, and message")
	}

	e := &models.Enquiry{}
	err := s.db.QueryRow(`
		INSERT INTO enquiries (id, name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, subject, message, created_at
	`, uuid.New(), name, email, strings.TrimSpace(subject), message,
	).Scan(&e.ID, &e.Name, &e.Email, &e.Subject, &e.Message, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create enquiry: %w", err)
	}
	return e, nil
}

// FindByID retrieves an enquiry by its UUID. Returns nil if not found.
func (s *EnquiryStore) FindByID(id uuid.UUID) (*models.Enquiry, error) {
	e := &models.Enquiry{}
	err := s.db.QueryRow(`
		SELECT id, name, email, subject, message, created_at
		FROM enquiries WHERE id = $1
	`, id).Scan(&e.ID, &e.Name, &e.Email, &e.Subject, &e.Message, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find enquiry by id: %w", err)
	}
	return e, nil
}

// ListRecent returns the most recent enquiries, newest first.
func (s *EnquiryStore) ListRecent(limit int) ([]models.Enquiry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, name, email, subject, message, created_at
		FROM enquiries
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer rows.Close()

	var items []models.Enquiry
	for rows.Next() {
		var e models.Enquiry
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Subject, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan enquiry: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
