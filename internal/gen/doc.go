// Package gen renders classified views into layered LookML files.
//
// Generation uses text/template for deterministic output. For a view "v"
// the generator produces, relative to the output root:
//   - views/v/v.source.view.lkml: the original view, renamed to "v"
//   - views/v/v.semantic.view.lkml: primary key, IDs and measures
//   - views/v/v.style.view.lkml: labels, grouping, formats and filter fields
//   - explores/v.explore.lkml: the explore with configured joins
//
// Each layer refines the one below it through an include and a "+v" view
// refinement.
package gen
