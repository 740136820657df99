// Package csvfile provides a driven.DatasetLoader that reads the prompt
// dataset from a delimited text file. Files ending in .tsv are read with a
// tab delimiter; everything else is treated as comma-separated.
//
// The header row must name an "act" and a "prompt" column (matched
// case-insensitively, surrounding whitespace and a UTF-8 BOM ignored).
// Other columns are ignored. A row shorter than the header yields empty
// strings for the missing fields.
package csvfile
