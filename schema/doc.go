// Package schema defines the EduLearn API payloads.
package schema
