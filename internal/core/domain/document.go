package domain

// Document is a flat schemaless record as stored in MongoDB. Services,
// reviews, products, and orders are all persisted verbatim as documents
// with a store-assigned _id; the order collection additionally enforces
// uniqueness on the (partsName, email) pair.
type Document = map[string]any

// Order field names as they appear in stored documents. The wire names
// are preserved exactly so existing clients keep working.
const (
	FieldPartsName = "partsName"
	FieldEmail     = "email"
)
