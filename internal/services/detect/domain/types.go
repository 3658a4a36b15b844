// Package domain defines the core types and interfaces for the detect service
package domain

// Message is a single email as assembled by transports for classification
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	// From is the sender address; Self is the identity's own address
	From string `json:"from"`
	Self string `json:"self"`
}
