package kvstore

// Keys used by the session layer. Both are present or both absent; the
// pairing is enforced by the session store, not here.
const (
	KeyToken = "token"
	KeyRole  = "role"
)

// Store is the durable key-value port behind session persistence.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}
