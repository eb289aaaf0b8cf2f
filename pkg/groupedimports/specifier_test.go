package groupedimports

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyParty(t *testing.T) {
	tests := []struct {
		name      string
		specifier string
		want      PartyType
	}{
		{"current directory", "./lorem/ipsum", FirstParty},
		{"parent directory", "../models/consumer", FirstParty},
		{"bare dot", ".", FirstParty},
		{"package", "example-module", ThirdParty},
		{"scoped package", "@scoped/module", ThirdParty},
		{"deep import", "rxjs/add/operator/map", ThirdParty},
		{"empty string", "", ThirdParty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, ClassifyParty(tt.specifier), "ClassifyParty(%q)", tt.specifier)
		})
	}
}

func TestExtractRoot(t *testing.T) {
	tests := []struct {
		name      string
		specifier string
		want      string
		wantOK    bool
	}{
		{"plain package", "example", "example", true},
		{"dash stops the root", "example-module", "example", true},
		{"deep import", "rxjs/add/operator/map", "rxjs", true},
		{"scoped package", "@angular/core", "@angular/core", true},
		{"scoped deep import", "@angular/core/testing", "@angular/core", true},
		{"scoped package with dash", "@utensils/table-stuff", "@utensils/table", true},
		{"relative import", "../../examples/fruits", "", false},
		{"scope without package", "@angular", "", false},
		{"scope with empty package", "@angular/", "", false},
		{"empty string", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, ok := ExtractRoot(tt.specifier)
			req.Equal(tt.wantOK, ok, "ExtractRoot(%q) ok", tt.specifier)
			req.Equal(tt.want, got, "ExtractRoot(%q)", tt.specifier)
		})
	}
}

func TestExtractScope(t *testing.T) {
	tests := []struct {
		name      string
		specifier string
		want      string
		wantOK    bool
	}{
		{"scoped package", "@angular/core", "@angular", true},
		{"scoped deep import", "@edible/preservatives/salt", "@edible", true},
		{"unscoped package", "rxjs/Observable", "", false},
		{"scope without slash", "@angular", "", false},
		{"at sign later in the specifier", "pkg/@scope/x", "", false},
		{"relative import", "./@scope/x", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, ok := ExtractScope(tt.specifier)
			req.Equal(tt.wantOK, ok, "ExtractScope(%q) ok", tt.specifier)
			req.Equal(tt.want, got, "ExtractScope(%q)", tt.specifier)
		})
	}
}

func TestClassify(t *testing.T) {
	req := require.New(t)

	spec := Classify("@angular/common/http")
	req.Equal(Specifier{
		Text:     "@angular/common/http",
		Party:    ThirdParty,
		Root:     "@angular/common",
		HasRoot:  true,
		Scope:    "@angular",
		HasScope: true,
	}, spec)

	spec = Classify("../services/producer")
	req.Equal(FirstParty, spec.Party)
	req.False(spec.HasRoot)
	req.False(spec.HasScope)
}
