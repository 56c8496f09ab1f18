// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/sommelier/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   pagination.Params
	}{
		{"defaults", "/wines", pagination.Params{Page: 1, Limit: 20}},
		{"explicit", "/wines?page=3&limit=10", pagination.Params{Page: 3, Limit: 10}},
		{"limit_too_large", "/wines?limit=1000", pagination.Params{Page: 1, Limit: 20}},
		{"negative_page", "/wines?page=-2", pagination.Params{Page: 1, Limit: 20}},
		{"garbage", "/wines?page=x&limit=y", pagination.Params{Page: 1, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.FromRequest(httptest.NewRequest("GET", tt.target, nil)))
		})
	}
}

/*
TestParams_Window checks the in-memory slicing bounds.
*/
func TestParams_Window(t *testing.T) {
	tests := []struct {
		name      string
		params    pagination.Params
		total     int
		wantStart int
		wantEnd   int
	}{
		{"first_page", pagination.Params{Page: 1, Limit: 10}, 25, 0, 10},
		{"last_partial_page", pagination.Params{Page: 3, Limit: 10}, 25, 20, 25},
		{"past_the_end", pagination.Params{Page: 5, Limit: 10}, 25, 25, 25},
		{"empty_list", pagination.Params{Page: 1, Limit: 10}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.params.Window(tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 10, 25)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 0, pagination.NewMeta(1, 0, 25).TotalPages)
}
