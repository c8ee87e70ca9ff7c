// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Chat is the predicate function for chat builders.
type Chat func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Psychologist is the predicate function for psychologist builders.
type Psychologist func(*sql.Selector)

// PsychologistTag is the predicate function for psychologisttag builders.
type PsychologistTag func(*sql.Selector)

// SessionRequest is the predicate function for sessionrequest builders.
type SessionRequest func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
