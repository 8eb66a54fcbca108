package pairing

// AccountKeyStore holds the durable (process-lifetime) mapping from a
// platform account identifier to its paired public key.
type AccountKeyStore interface {
	// SetKey associates key with accountID, overwriting any prior value.
	SetKey(accountID, key string)
	// GetKey retrieves the key paired with accountID. Returns false if no
	// key has been paired for that account.
	GetKey(accountID string) (string, bool)
}
