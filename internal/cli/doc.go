// Package cli implements the lookml-builder command line.
//
// Commands:
//
//	generate <view_file> [new_view_name]  build one view
//	batch                                 build every view in a directory
//	init-config                           write a commented sample config
//	ontology <view_file>                  print an ontology skeleton
//	history                               list recorded runs
//
// Flags default from LOOKML_CONFIG, LOOKML_OUTPUT_DIR and LOOKML_VERBOSE
// when not given on the command line.
package cli
