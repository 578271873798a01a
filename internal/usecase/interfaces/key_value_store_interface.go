package interfaces

// IKeyValueStore is the local persistence contract (one JSON document per
// logical key). Saves are best-effort: the ledger keeps serving from
// memory when a save fails. A Load miss is (nil, false, nil), never an
// error; a corrupt single key must not block loading of the others.
//
//go:generate mockgen -source=key_value_store_interface.go -destination=mocks/key_value_store_mock.go -package=mocks
type IKeyValueStore interface {
	Save(key string, value []byte) error
	Load(key string) ([]byte, bool, error)
}
