package pure_test

import (
	"testing"

	"github.com/on-the-ground/singleton_go/pure"
	"github.com/on-the-ground/singleton_go/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgKey_ValueEquality(t *testing.T) {
	assert.True(t, pure.Value("a").Equal(pure.Value("a")))
	assert.False(t, pure.Value("a").Equal(pure.Value("b")))
	assert.True(t, pure.Value(true).Equal(pure.Value(true)))
	assert.False(t, pure.Value(1).Equal(pure.Value(int64(1))), "types are part of the value")
	assert.Equal(t, pure.KindValue, pure.Value(3.5).Kind())
}

func TestArgKey_IdentityEquality(t *testing.T) {
	type point struct{ X, Y int }
	p1 := &point{1, 2}
	p2 := &point{1, 2}

	assert.True(t, pure.Ref(p1).Equal(pure.Ref(p1)))
	assert.False(t, pure.Ref(p1).Equal(pure.Ref(p2)))
	assert.Equal(t, pure.KindIdentity, pure.Ref(p1).Kind())

	s1 := []int{1, 2, 3}
	s2 := []int{1, 2, 3}
	assert.True(t, pure.Slice(s1).Equal(pure.Slice(s1)))
	assert.False(t, pure.Slice(s1).Equal(pure.Slice(s2)))
	assert.False(t, pure.Slice(s1).Equal(pure.Slice(s1[:2])), "a shorter view is another array")

	m1 := map[string]int{"a": 1}
	m2 := map[string]int{"a": 1}
	assert.True(t, pure.Map(m1).Equal(pure.Map(m1)))
	assert.False(t, pure.Map(m1).Equal(pure.Map(m2)))

	fn := func() {}
	assert.True(t, pure.Ref(&fn).Equal(pure.Ref(&fn)))
}

func TestArgKey_AbsentValuesAreDistinct(t *testing.T) {
	assert.True(t, pure.Null.Equal(pure.Null))
	assert.True(t, pure.Undefined.Equal(pure.Undefined))
	assert.False(t, pure.Null.Equal(pure.Undefined))
	assert.Equal(t, "value(null)", pure.Null.String())
	assert.Equal(t, "value(undefined)", pure.Undefined.String())
}

func TestArgKey_Symbols(t *testing.T) {
	sym := pure.NewSymbol("test")
	same := sym
	other := pure.NewSymbol("test")

	assert.True(t, sym.Key().Equal(same.Key()))
	assert.False(t, sym.Key().Equal(other.Key()))
	assert.Equal(t, "test", sym.Description())
	assert.Equal(t, "Symbol(test)", sym.String())
}

func TestArgKey_PartitionKeyFollowsEquality(t *testing.T) {
	x := struct{ n int }{1}
	assert.Equal(t, pure.Value("a").PartitionKey(), pure.Value("a").PartitionKey())
	assert.Equal(t, pure.Ref(&x).PartitionKey(), pure.Ref(&x).PartitionKey())
	assert.NotEqual(t, pure.Value(1).PartitionKey(), pure.Value("1").PartitionKey())

	a := pure.ArgsOf(pure.Value("a"), pure.Value(1))
	b := pure.ArgsOf(pure.Value("a"), pure.Value(1))
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.PartitionKey(), b.PartitionKey())
}

type mutableConfig struct {
	N int
}

func (c *mutableConfig) String() string { return "stringer-called" }

func TestArgKey_PointerValueKeysAreStableAcrossMutation(t *testing.T) {
	c := &mutableConfig{N: 1}
	k := pure.Value(c)
	args := pure.ArgsOf(pure.Value("a"), k)

	beforeKey, beforeString, beforeHash := k.PartitionKey(), k.String(), args.Hash()
	c.N = 2

	assert.Equal(t, beforeKey, k.PartitionKey())
	assert.Equal(t, beforeString, k.String())
	assert.Equal(t, beforeHash, args.Hash())
	assert.NotContains(t, k.PartitionKey(), "stringer-called", "pointer keys never call String on the pointee")

	ch := make(chan int)
	assert.Equal(t, pure.Value(ch).PartitionKey(), pure.Value(ch).PartitionKey())
	assert.NotEqual(t, pure.Value(ch).PartitionKey(), pure.Value(make(chan int)).PartitionKey())
	assert.NotEqual(t, pure.Value(c).PartitionKey(), pure.Value(&mutableConfig{N: 2}).PartitionKey())
}

func TestArgs_HashFollowsEquality(t *testing.T) {
	items := []int{1}
	a := pure.ArgsOf(pure.Value("a"), pure.Slice(items), pure.Null)
	b := pure.ArgsOf(pure.Value("a"), pure.Slice(items), pure.Null)
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	assert.NotEqual(t, a.Hash(), pure.ArgsOf(pure.Value("a"), pure.Slice(items), pure.Undefined).Hash())
	assert.NotEqual(t, a.Hash(), pure.ArgsOf().Hash())
}

func TestArgs_Accessors(t *testing.T) {
	items := []string{"a"}
	args := pure.ArgsOf(pure.Value("x"), pure.Value(2), pure.Slice(items))

	assert.Equal(t, 3, args.Len())
	assert.Equal(t, []any{"x", 2, items}, args.Values())
	assert.Equal(t, "(value(x), value(2), "+args.At(2).String()+")", args.String())

	s, err := pure.ArgAs[string](args, 0)
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	got := pure.MustArgAs[[]string](args, 2)
	assert.Equal(t, items, got)

	_, err = pure.ArgAs[string](args, 1)
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)

	_, err = pure.ArgAs[string](args, 3)
	assert.ErrorIs(t, err, pure.ErrArgIndex)

	assert.Panics(t, func() { pure.MustArgAs[int](args, 0) })
}
