// Package catalog provides the static option catalogs every worksheet draws
// its categorical answers from.
//
// Catalogs are YAML documents bundled into the binary and parsed once:
//
//	catalogs:
//	  - name: gravity
//	    description: Surface gravity relative to Earth.
//	    entries:
//	      - id: high
//	        name: High
//	        description: One and a half to three g.
//
// Entry ids are stable foreign keys inside stored worksheet data. Renaming
// an id without migrating stored worksheets breaks resolution of those
// worksheets; Resolve only papers over spelling drift ("Super Earth",
// "superEarth"), not renames.
//
// Answers that may be either a catalog id or free text are modelled as a
// Selection (Known or Custom) rather than a reserved "other" id.
package catalog
