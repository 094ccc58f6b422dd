// Package schema validates IDS-Light documents against their structural
// contract.
//
// # Usage
//
//	res := schema.Validate(doc)
//	if !res.Valid {
//	    for _, v := range res.Errors {
//	        fmt.Println(v) // e.g. /ids/rules/1/properties/0: missing required property 'name'
//	    }
//	}
//
// Validate never fails with an error value of its own: it always returns
// a Result. The contract is declarative: per-facet field rules are plain
// tables compiled once at package init and walked for every call, so the
// accepted document set is read off the tables, not off control flow.
//
// Validation is deliberately decoupled from parsing. A document that
// parses fine but is meaningless (say, a rule with no requirements) gets
// a targeted diagnostic naming the offending rule and facet instead of a
// generic parse failure.
package schema
