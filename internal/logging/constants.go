package logging

// Standard field keys used across the ingestion pipeline.
const (
	FieldFile       = "file_path"
	FieldOperation  = "operation"
	FieldDelimiter  = "delimiter"
	FieldRow        = "row"
	FieldStrategy   = "strategy"
	FieldCells      = "cells"
	FieldHeaderLen  = "header_len"
	FieldCount      = "count"
	FieldErrors     = "errors"
	FieldQuery      = "query"
	FieldProduct    = "product"
	FieldSimilarity = "similarity"
	FieldCatalog    = "catalog"
	FieldDuration   = "duration_ms"
	FieldWorkers    = "workers"
	FieldOutputFile = "output_file"
)
