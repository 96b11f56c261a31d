package upload

import "testing"

func TestModePresets(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want Mode
	}{
		{
			name: "cautious allows nothing",
			mode: Cautious,
			want: Mode{},
		},
		{
			name: "extend only adds files",
			mode: Extend,
			want: Mode{
				UpdateIfExists:  true,
				ResolveStudents: true,
				AddFiles:        true,
			},
		},
		{
			name: "diffscan adds and replaces files",
			mode: DiffScan,
			want: Mode{
				UpdateIfExists:      true,
				ResolveStudents:     true,
				AddFiles:            true,
				UpdateExistingFiles: true,
			},
		},
		{
			name: "overwrite allows everything",
			mode: Overwrite,
			want: Mode{
				UpdateIfExists:            true,
				UpdateIfClaimed:           true,
				ResolveStudents:           true,
				AddFiles:                  true,
				UpdateExistingFiles:       true,
				DeleteUnspecifiedFiles:    true,
				RemoveComments:            true,
				DoUnclaim:                 true,
				DeleteAffectedSubmissions: true,
			},
		},
		{
			name: "pregrade leaves claimed work and graders alone",
			mode: Pregrade,
			want: Mode{
				UpdateIfExists:            true,
				ResolveStudents:           true,
				AddFiles:                  true,
				UpdateExistingFiles:       true,
				DeleteUnspecifiedFiles:    true,
				RemoveComments:            true,
				DeleteAffectedSubmissions: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mode != tt.want {
				t.Errorf("preset = %+v, want %+v", tt.mode, tt.want)
			}
		})
	}
}

func TestModeByName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{name: "lowercase", input: "extend", want: Extend},
		{name: "mixed case", input: "DiffScan", want: DiffScan},
		{name: "uppercase", input: "OVERWRITE", want: Overwrite},
		{name: "unknown", input: "aggressive", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ModeByName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ModeByName(%q) expected error, got none", tt.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("ModeByName(%q) failed: %v", tt.input, err)
			}
			if mode != tt.want {
				t.Errorf("ModeByName(%q) = %+v, want %+v", tt.input, mode, tt.want)
			}
		})
	}
}
