package docloader

// ContentTypeJSONLD is assigned to documents resolved via DID methods
const ContentTypeJSONLD = "application/ld+json"

// Document is the record handed back for every resolved reference,
// matching the shape JSON-LD processors expect from a document loader.
// All four fields are always present in the serialized form; absent
// values stay at their zero value
type Document struct {
	ContentType string      `json:"contentType" msgpack:"contentType"`
	ContextURL  string      `json:"contextUrl" msgpack:"contextUrl"`
	DocumentURL string      `json:"documentUrl" msgpack:"documentUrl"`
	Document    interface{} `json:"document" msgpack:"document"`
}

// Options carries loader-specific options through to the backend
// untouched; the loader itself never inspects them
type Options map[string]interface{}
