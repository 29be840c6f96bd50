package theme_test

import (
	goerrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/novelui/pkg/errors"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/theme"
)

func TestDefaultDerivesComponentThemes(t *testing.T) {
	th := theme.Default()

	dialog := th.DialogBoxOf()
	if dialog.TextStyle != th.TextStyle {
		t.Errorf("dialog text style = %+v, want the base style", dialog.TextStyle)
	}
	if !dialog.NameStyle.Bold {
		t.Error("speaker name style should be bold")
	}
	if dialog.RevealSpeed <= 0 {
		t.Errorf("reveal speed = %v, want positive", dialog.RevealSpeed)
	}

	menu := th.ChoiceMenuOf()
	if menu.ItemBackground == menu.ItemHoverBackground {
		t.Error("hover background should differ from the resting background")
	}

	button := th.ButtonOf()
	if button.Padding.IsZero() {
		t.Error("button padding should not be zero")
	}
}

func TestComponentOverridesWinOverDerivation(t *testing.T) {
	th := theme.Default()
	th.Button = &theme.ButtonTheme{Background: graphics.ColorRed}

	if got := th.ButtonOf().Background; got != graphics.ColorRed {
		t.Errorf("button background = %v, want the override", got)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	data := []byte(`background: "#202030"
text_style:
  font_size: 20
  color: "#FFEECC"
dialog_box:
  background: "#80000000"
  reveal_speed: 60
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := theme.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Background != graphics.RGB(0x20, 0x20, 0x30) {
		t.Errorf("background = %08X", uint32(th.Background))
	}
	if th.TextStyle.FontSize != 20 {
		t.Errorf("font size = %v, want 20", th.TextStyle.FontSize)
	}
	if th.DialogBox == nil {
		t.Fatal("dialog box section should be set")
	}
	if th.DialogBox.RevealSpeed != 60 {
		t.Errorf("reveal speed = %v, want 60", th.DialogBox.RevealSpeed)
	}
	if th.DialogBox.Background != graphics.Color(0x80000000) {
		t.Errorf("dialog background = %08X", uint32(th.DialogBox.Background))
	}

	// Sections absent from the file still derive from the base styles.
	if th.Button != nil {
		t.Error("button section should stay derived")
	}
}

func TestLoadMissingFileReturnsConfigError(t *testing.T) {
	_, err := theme.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error")
	}
	var uiErr *errors.UIError
	if !goerrors.As(err, &uiErr) {
		t.Fatalf("error type = %T", err)
	}
	if uiErr.Kind != errors.KindConfig || uiErr.Op != "theme.Load" {
		t.Errorf("error = %v", uiErr)
	}
}

func TestLoadMalformedYAMLReturnsConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("background: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := theme.Load(path)
	var uiErr *errors.UIError
	if !goerrors.As(err, &uiErr) || uiErr.Kind != errors.KindConfig {
		t.Fatalf("error = %v", err)
	}
}

func TestSaveRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	th := theme.Default()
	th.Background = graphics.RGB(0x11, 0x22, 0x33)
	dialog := th.DialogBoxOf()
	th.DialogBox = &dialog

	if err := th.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := theme.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Background != th.Background {
		t.Errorf("background = %08X, want %08X", uint32(loaded.Background), uint32(th.Background))
	}
	if loaded.DialogBox == nil || *loaded.DialogBox != *th.DialogBox {
		t.Errorf("dialog box = %+v, want %+v", loaded.DialogBox, th.DialogBox)
	}
}
