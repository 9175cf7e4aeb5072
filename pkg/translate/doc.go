// Package translate resolves validation messages into localized text.
//
// The engine calls a Translator with a message key and the failure context;
// a Translator that has no template for the key reports a miss and the engine
// falls back to interpolating the key itself. Catalog is the stock
// implementation backed by nested per-language maps which can be supplied
// in code or parsed from YAML or JSON documents.
//
// Templates use named placeholders in the form %{name}:
//
//	catalog, _ := translate.NewCatalog(map[string]map[string]any{
//		"en": {"must be at least %{min} characters long": "too short, need %{min}"},
//	})
package translate
