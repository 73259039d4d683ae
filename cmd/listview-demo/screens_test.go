package main

import (
	"testing"

	"github.com/BrandonKowalski/listview/pkg/listview/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionRestoresOffset(t *testing.T) {
	d := &demo{}
	stack := router.NewStack()

	next, input := d.transition(screenList, listResult{Selected: "Item 4", Offset: 96}, stack)
	assert.Equal(t, screenDetail, next)
	assert.Equal(t, detailInput{Label: "Item 4"}, input)
	require.Equal(t, 1, stack.Len())

	next, input = d.transition(screenDetail, nil, stack)
	assert.Equal(t, screenList, next)
	assert.Equal(t, listInput{Offset: 96}, input)
	assert.True(t, stack.IsEmpty())
}

func TestTransitionBackExits(t *testing.T) {
	d := &demo{}

	next, _ := d.transition(screenList, listResult{Back: true}, router.NewStack())
	assert.Equal(t, router.ScreenExit, next)
}

func TestTransitionDetailWithEmptyStack(t *testing.T) {
	d := &demo{}

	next, input := d.transition(screenDetail, nil, router.NewStack())
	assert.Equal(t, screenList, next)
	assert.Equal(t, listInput{}, input)
}
