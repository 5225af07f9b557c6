// Package schema describes templates as WIT types and maps them onto named records.
//
// Describe reports the WIT tuple a template unpacks to:
//
//	t, _ := template.Parse("n C2 a4 s*", template.HostPlatform())
//	ty, _ := schema.Describe(t)
//	schema.TypeString(ty) // tuple<u16, u8, u8, string, list<s16>>
//
// Layouts give each value-bearing directive a field name. They are loaded
// from YAML:
//
//	layouts:
//	  - name: reading
//	    description: sensor reading
//	    template: "C n g"
//	    fields: [channel, sequence, celsius]
//
// Layout.Pack takes a map keyed by field name; Layout.Unpack returns one.
package schema
