// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package esquery

import (
	"fmt"
	"sort"
	"strings"
)

// fileTypes maps category names to Everything ext: filter expressions.
// The categories form a closed set: an unknown name is rejected, never
// silently treated as an unfiltered search.
var fileTypes = map[string]string{
	"audio":    "ext:mp3;wav;flac;aac;ogg;wma;m4a;opus;aiff;alac",
	"video":    "ext:mp4;avi;mkv;mov;wmv;flv;webm;m4v;mpeg;mpg;3gp;ts",
	"image":    "ext:jpg;jpeg;png;gif;bmp;svg;webp;tiff;tif;ico;raw;heic;heif;avif;psd",
	"document": "ext:pdf;doc;docx;xls;xlsx;ppt;pptx;odt;ods;odp;rtf;txt;md;epub;pages;numbers;key",
	"code": "ext:py;js;ts;jsx;tsx;c;cpp;h;hpp;cs;java;go;rs;rb;php;swift;kt;scala;r;" +
		"lua;sh;bash;ps1;bat;cmd;sql;html;css;scss;sass;less;vue;svelte;dart;zig;" +
		"nim;hx;ex;exs;erl;hs;ml;fs;clj;lisp;asm;toml;yaml;yml;json;xml;ini;cfg;" +
		"conf;env;dockerfile;makefile;cmake;gradle;sbt;proto;graphql;tf;hcl",
	"archive":    "ext:zip;rar;7z;tar;gz;bz2;xz;tgz;zst;lz4;cab;iso;dmg",
	"executable": "ext:exe;msi;dll;sys;com;scr;appx;msix",
	"font":       "ext:ttf;otf;woff;woff2;eot;fon",
	"3d":         "ext:obj;fbx;stl;blend;dae;3ds;gltf;glb;usd;usda;usdz;step;iges",
	"data":       "ext:csv;tsv;json;jsonl;ndjson;xml;sqlite;db;mdb;accdb;parquet;arrow;avro;hdf5;feather",
}

// CategoryNames returns the known file type category names, sorted.
func CategoryNames() []string {
	names := make([]string, 0, len(fileTypes))
	for k := range fileTypes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// CategoryFilter returns the ext: filter expression for a category.
func CategoryFilter(fileType string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(fileType))
	expr, ok := fileTypes[key]
	if !ok {
		return "", fmt.Errorf("unknown file type %q (available: %s)", fileType, strings.Join(CategoryNames(), ", "))
	}
	return expr, nil
}

// TypeQuery builds an Everything query string for a file type category,
// optionally narrowed by a path restriction and additional query text.
// The parts are joined with spaces, which is Everything's own AND syntax.
func TypeQuery(fileType, additionalQuery, pathFilter string) (string, error) {
	expr, err := CategoryFilter(fileType)
	if err != nil {
		return "", err
	}
	parts := []string{expr}
	if pathFilter != "" {
		parts = append(parts, quotePath(pathFilter))
	}
	if additionalQuery != "" {
		parts = append(parts, additionalQuery)
	}
	return strings.Join(parts, " "), nil
}
