// Package lead describes how an accepted contact submission is represented
// in the CRM: the properties written on create and on update, the note
// attached to the record, and the Outcome of an upsert attempt.
package lead
