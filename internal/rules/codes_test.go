// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"reflect"
	"testing"
)

func TestExtractHyphenCodes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "toner code",
			text: "삼성 clt-p407c 토너",
			want: []string{"clt-p407c"},
		},
		{
			name: "underscore segments",
			text: "모델 x1_y2_z3",
			want: []string{"x1_y2_z3"},
		},
		{
			name: "letters and digits across segments",
			text: "규격 ab-12 클립",
			want: []string{"ab-12"},
		},
		{
			name: "no letter no match",
			text: "123-456",
			want: nil,
		},
		{
			name: "no digit no match",
			text: "abc-def",
			want: nil,
		},
		{
			name: "no prefix excluded",
			text: "no.a1-b2",
			want: nil,
		},
		{
			name: "no prefix uppercase excluded",
			text: "NO.a1-b2",
			want: nil,
		},
		{
			name: "no with space not excluded",
			text: "no. a1-b2",
			want: []string{"a1-b2"},
		},
		{
			name: "case preserved",
			text: "CLT-P407C 정품",
			want: []string{"CLT-P407C"},
		},
		{
			name: "glued hangul blocks match",
			text: "정품clt-p407c",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractHyphenCodes(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractHyphenCodes(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractAlnumCodes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "compact code",
			text: "잉크 c6578da",
			want: []string{"c6578da"},
		},
		{
			name: "sub token of hyphen code",
			text: "clt-p407c",
			want: []string{"p407c"},
		},
		{
			name: "no prefix excluded",
			text: "no.A123",
			want: nil,
		},
		{
			name: "no with space not excluded",
			text: "no. A123",
			want: []string{"A123"},
		},
		{
			name: "too short",
			text: "a1 b2",
			want: nil,
		},
		{
			name: "digits only",
			text: "12345",
			want: nil,
		},
		{
			name: "letters only",
			text: "abcde",
			want: nil,
		},
		{
			name: "underscore boundary blocks match",
			text: "abc1_def2",
			want: nil,
		},
		{
			name: "case preserved dedup case insensitive",
			text: "AB12 ab12",
			want: []string{"AB12"},
		},
		{
			name: "glued hangul blocks match",
			text: "가방c6578da",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAlnumCodes(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractAlnumCodes(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
