package document

// Normalize applies boundary compatibility shims in place and returns the
// document. Today that is a single shim: a rule's legacy singular
// classification field becomes a one-element entry appended to its
// classifications array (never overwriting explicit entries).
//
// Parsing runs Normalize before handing a document to validation or
// conversion, so downstream code sees one shape only.
func Normalize(doc *Document) *Document {
	if doc == nil {
		return nil
	}
	for _, rule := range doc.IDS.Rules {
		if rule == nil || rule.Classification == nil {
			continue
		}
		rule.Classifications = append(rule.Classifications, &Classification{
			System: rule.Classification.System,
			Value:  rule.Classification.Value,
			URI:    rule.Classification.URI,
		})
		rule.Classification = nil
	}
	return doc
}
