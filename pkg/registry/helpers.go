package registry

import "github.com/joshuapare/regkit/pkg/types"

// Typed convenience wrappers around GetValue/SetValue. The getters return
// ErrTypeMismatch when the stored value decodes to a different Go type than
// requested; like GetValue, a missing key or value yields the default.

// GetString reads a REG_SZ/REG_EXPAND_SZ value.
func (f *Facade) GetString(keyName, valueName, defaultValue string) (string, error) {
	v, err := f.GetValue(keyName, valueName, defaultValue)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", types.ErrTypeMismatch
	}
	return s, nil
}

// GetStrings reads a REG_MULTI_SZ value.
func (f *Facade) GetStrings(keyName, valueName string, defaultValue []string) ([]string, error) {
	v, err := f.GetValue(keyName, valueName, defaultValue)
	if err != nil {
		return nil, err
	}
	ss, ok := v.([]string)
	if !ok {
		return nil, types.ErrTypeMismatch
	}
	return ss, nil
}

// GetDWord reads a REG_DWORD value.
func (f *Facade) GetDWord(keyName, valueName string, defaultValue uint32) (uint32, error) {
	v, err := f.GetValue(keyName, valueName, defaultValue)
	if err != nil {
		return 0, err
	}
	u, ok := v.(uint32)
	if !ok {
		return 0, types.ErrTypeMismatch
	}
	return u, nil
}

// GetQWord reads a REG_QWORD value.
func (f *Facade) GetQWord(keyName, valueName string, defaultValue uint64) (uint64, error) {
	v, err := f.GetValue(keyName, valueName, defaultValue)
	if err != nil {
		return 0, err
	}
	u, ok := v.(uint64)
	if !ok {
		return 0, types.ErrTypeMismatch
	}
	return u, nil
}

// GetBinary reads a REG_BINARY value.
func (f *Facade) GetBinary(keyName, valueName string, defaultValue []byte) ([]byte, error) {
	v, err := f.GetValue(keyName, valueName, defaultValue)
	if err != nil {
		return nil, err
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, types.ErrTypeMismatch
	}
	return b, nil
}

// SetString writes a REG_SZ value.
func (f *Facade) SetString(keyName, valueName, value string) error {
	return f.SetValue(keyName, valueName, value, types.REG_SZ)
}

// SetExpandString writes a REG_EXPAND_SZ value (environment references are
// expanded by readers, not here).
func (f *Facade) SetExpandString(keyName, valueName, value string) error {
	return f.SetValue(keyName, valueName, value, types.REG_EXPAND_SZ)
}

// SetStrings writes a REG_MULTI_SZ value.
func (f *Facade) SetStrings(keyName, valueName string, value []string) error {
	return f.SetValue(keyName, valueName, value, types.REG_MULTI_SZ)
}

// SetDWord writes a REG_DWORD value.
func (f *Facade) SetDWord(keyName, valueName string, value uint32) error {
	return f.SetValue(keyName, valueName, value, types.REG_DWORD)
}

// SetQWord writes a REG_QWORD value.
func (f *Facade) SetQWord(keyName, valueName string, value uint64) error {
	return f.SetValue(keyName, valueName, value, types.REG_QWORD)
}

// SetBinary writes a REG_BINARY value.
func (f *Facade) SetBinary(keyName, valueName string, value []byte) error {
	return f.SetValue(keyName, valueName, value, types.REG_BINARY)
}
