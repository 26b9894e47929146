package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Limit(t *testing.T) {
	assert.Equal(t, 10, (&PageRequest{}).Limit())
	assert.Equal(t, 10, (&PageRequest{Size: -5}).Limit())
	assert.Equal(t, 25, (&PageRequest{Size: 25}).Limit())
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, (&PageRequest{}).Offset())
	assert.Equal(t, 0, (&PageRequest{Page: -1}).Offset())
	assert.Equal(t, 20, (&PageRequest{Page: 2}).Offset())
	assert.Equal(t, 15, (&PageRequest{Page: 3, Size: 5}).Offset())
}

func TestPageRequest_Descending(t *testing.T) {
	assert.False(t, (&PageRequest{}).Descending())
	assert.False(t, (&PageRequest{Dir: "asc"}).Descending())
	assert.True(t, (&PageRequest{Dir: "desc"}).Descending())
	assert.True(t, (&PageRequest{Dir: "DESC"}).Descending())
}
