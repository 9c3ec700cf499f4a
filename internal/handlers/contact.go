// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"swapstation/internal/nav"
	"swapstation/internal/render"
	"swapstation/internal/store"
)

// Field limits for the contact form.
const (
	maxNameLen    = 200
	maxEmailLen   = 320
	maxSubjectLen = 300
	maxMessageLen = 10_000
)

// Contact handles the contact page and form submissions. enquiries may be
// nil when Postgres is not configured; submissions are then logged instead
// of persisted so the form keeps working in a degraded deployment.
type Contact struct {
	renderer  *render.Renderer
	enquiries *store.EnquiryStore
}

// NewContact creates the contact handler group.
func NewContact(renderer *render.Renderer, enquiries *store.EnquiryStore) *Contact {
	return &Contact{renderer: renderer, enquiries: enquiries}
}

// Show renders the contact form.
func (c *Contact) Show(w http.ResponseWriter, r *http.Request) {
	c.render(w, http.StatusOK, map[string]any{}, theme(r))
}

// Submit processes a contact form submission. Validation errors re-render
// the form with the submitted values preserved.
func (c *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.render(w, http.StatusBadRequest, map[string]any{"Error": "Could not read the form. Please try again."}, theme(r))
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	subject := strings.TrimSpace(r.PostFormValue("subject"))
	message := strings.TrimSpace(r.PostFormValue("message"))

	if msg := validateEnquiry(name, email, subject, message); msg != "" {
		c.render(w, http.StatusUnprocessableEntity, map[string]any{
			"Error": msg, "Name": name, "Email": email,
			"Subject": subject, "Message": message,
		}, theme(r))
		return
	}

	if c.enquiries != nil {
		enquiry, err := c.enquiries.Create(name, email, subject, message)
		if err != nil {
			slog.Error("store enquiry failed", "error", err)
			c.render(w, http.StatusInternalServerError, map[string]any{
				"Error": "We could not send your message. Please try again.",
				"Name":  name, "Email": email, "Subject": subject, "Message": message,
			}, theme(r))
			return
		}
		slog.Info("enquiry received", "id", enquiry.ID, "subject", subject)
	} else {
		slog.Info("enquiry received (not persisted)", "email", email, "subject", subject)
	}

	c.render(w, http.StatusOK, map[string]any{"Submitted": true}, theme(r))
}

func (c *Contact) render(w http.ResponseWriter, status int, data map[string]any, th string) {
	// The form template reads every field back; absent keys must render as
	// empty strings, not "<no value>".
	for _, k := range []string{"Name", "Email", "Subject", "Message"} {
		if _, ok := data[k]; !ok {
			data[k] = ""
		}
	}
	if err := c.renderer.Write(w, status, "contact", render.PageData{
		Title: "Contact Us",
		Page:  nav.PageContact,
		Theme: th,
		Data:  data,
	}); err != nil {
		slog.Error("render contact page failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// validateEnquiry checks contact form inputs and returns the first problem
// found, or "" when the submission is acceptable.
func validateEnquiry(name, email, subject, message string) string {
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if email == "" {
		return "Email is required."
	}
	if utf8.RuneCountInString(email) > maxEmailLen || !strings.Contains(email, "@") {
		return "Please enter a valid email address."
	}
	if subject == "" {
		return "Subject is required."
	}
	if utf8.RuneCountInString(subject) > maxSubjectLen {
		return "Subject is too long (max 300 characters)."
	}
	if message == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return "Message is too long (max 10,000 characters)."
	}
	return ""
}
