package setup

import "fmt"

// MissingSettingError reports a required setting found neither in the
// environment nor in the config file.
type MissingSettingError struct {
	Variable string
	Key      string
}

func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("%s not set (environment variable %s or config key %s)", e.Key, e.Variable, e.Key)
}

func missingSetting(variable, key string) *MissingSettingError {
	return &MissingSettingError{
		Variable: variable,
		Key:      key,
	}
}
