package memreg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/pkg/types"
)

func openRoot(t *testing.T, s *Store, h types.Hive) types.Key {
	t.Helper()
	k, err := s.OpenBaseKey(h, types.ViewDefault)
	require.NoError(t, err)
	return k
}

func TestOpenBaseKey_AllRootsPresent(t *testing.T) {
	s := New()
	for h := 0; h < types.HiveCount; h++ {
		k, err := s.OpenBaseKey(types.Hive(h), types.ViewDefault)
		require.NoError(t, err)
		require.NotNil(t, k)
	}

	_, err := s.OpenBaseKey(types.Hive(99), types.ViewDefault)
	require.Error(t, err)
}

func TestCreateAndOpenSubKey(t *testing.T) {
	s := New()
	root := openRoot(t, s, types.HiveCurrentUser)

	created, err := root.CreateSubKey(`Software\App\Settings`)
	require.NoError(t, err)
	require.NoError(t, created.Close())

	// Case-insensitive open, including intermediate keys.
	opened, err := root.OpenSubKey(`software\APP`)
	require.NoError(t, err)
	require.NoError(t, opened.Close())

	_, err = root.OpenSubKey(`Software\Nope`)
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestCreateSubKey_Idempotent(t *testing.T) {
	s := New()
	root := openRoot(t, s, types.HiveLocalMachine)

	k1, err := root.CreateSubKey(`SOFTWARE\App`)
	require.NoError(t, err)
	require.NoError(t, k1.SetValue("V", types.Value{Type: types.REG_SZ, Data: []byte{0, 0}}))
	require.NoError(t, k1.Close())

	// Creating again lands on the same node: the value survives.
	k2, err := root.CreateSubKey(`software\app`)
	require.NoError(t, err)
	_, err = k2.GetValue("V")
	require.NoError(t, err)
	require.NoError(t, k2.Close())
}

func TestValues_CaseInsensitiveAndDisplayCased(t *testing.T) {
	s := New()
	root := openRoot(t, s, types.HiveCurrentUser)
	k, err := root.CreateSubKey("App")
	require.NoError(t, err)
	defer k.Close()

	v := types.Value{Type: types.REG_DWORD, Data: []byte{1, 0, 0, 0}}
	require.NoError(t, k.SetValue("MyValue", v))

	got, err := k.GetValue("MYVALUE")
	require.NoError(t, err)
	require.Equal(t, v, got)

	names, err := k.ValueNames()
	require.NoError(t, err)
	require.Equal(t, []string{"MyValue"}, names)

	_, err = k.GetValue("absent")
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetValue_ReturnsCopy(t *testing.T) {
	s := New()
	root := openRoot(t, s, types.HiveCurrentUser)
	k, err := root.CreateSubKey("App")
	require.NoError(t, err)
	defer k.Close()

	require.NoError(t, k.SetValue("B", types.Value{Type: types.REG_BINARY, Data: []byte{1, 2}}))

	got, err := k.GetValue("B")
	require.NoError(t, err)
	got.Data[0] = 99

	again, err := k.GetValue("B")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, again.Data)
}

func TestDeleteValue(t *testing.T) {
	s := New()
	root := openRoot(t, s, types.HiveCurrentUser)
	k, err := root.CreateSubKey("App")
	require.NoError(t, err)
	defer k.Close()

	require.NoError(t, k.SetValue("V", types.Value{Type: types.REG_SZ, Data: []byte{0, 0}}))
	require.NoError(t, k.DeleteValue("v"))
	require.ErrorIs(t, k.DeleteValue("V"), types.ErrNotFound)
}

func TestSubkeyNames_SortedDisplayCase(t *testing.T) {
	s := New()
	root := openRoot(t, s, types.HiveCurrentUser)

	for _, name := range []string{"Zeta", "Alpha", "miD"} {
		k, err := root.CreateSubKey(name)
		require.NoError(t, err)
		require.NoError(t, k.Close())
	}

	names, err := root.SubkeyNames()
	require.NoError(t, err)
	require.Equal(t, []string{"Alpha", "Zeta", "miD"}, names)
}

func TestClose_DoubleCloseFails(t *testing.T) {
	s := New()
	root := openRoot(t, s, types.HiveCurrentUser)
	k, err := root.CreateSubKey("App")
	require.NoError(t, err)

	require.NoError(t, k.Close())
	require.ErrorIs(t, k.Close(), types.ErrKeyClosed)

	// Operations on a closed handle fail with ErrKeyClosed.
	_, err = k.GetValue("V")
	require.ErrorIs(t, err, types.ErrKeyClosed)
	_, err = k.OpenSubKey("X")
	require.ErrorIs(t, err, types.ErrKeyClosed)
}

func TestOpenSubKey_EmptyPathAliasesSameKey(t *testing.T) {
	s := New()
	root := openRoot(t, s, types.HiveCurrentUser)

	alias, err := root.OpenSubKey("")
	require.NoError(t, err)
	defer alias.Close()

	require.NoError(t, alias.SetValue("V", types.Value{Type: types.REG_SZ, Data: []byte{0, 0}}))
	_, err = root.GetValue("V")
	require.NoError(t, err)
}
