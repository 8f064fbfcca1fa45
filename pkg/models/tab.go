package models

import (
	"net/url"

	"github.com/sofya-ai/meet-launcher/pkg/config"
)

// Tab is one of the two panels of the home page.
type Tab int

const (
	TabDemo Tab = iota
	TabCustom
)

const (
	tabDemoValue   = "demo"
	tabCustomValue = "custom"
)

// TabFromQuery maps the value of the "tab" query parameter to a Tab.
// Anything but "custom" selects the demo tab.
func TabFromQuery(v string) Tab {
	if v == tabCustomValue {
		return TabCustom
	}
	return TabDemo
}

// TabFromIndex defaults to the demo tab for unknown indexes.
func TabFromIndex(i int) Tab {
	if i == int(TabCustom) {
		return TabCustom
	}
	return TabDemo
}

func (t Tab) Index() int {
	return int(t)
}

func (t Tab) QueryValue() string {
	if t == TabCustom {
		return tabCustomValue
	}
	return tabDemoValue
}

// URL is the home page address that selects t.
func (t Tab) URL() string {
	q := url.Values{}
	q.Set(config.TabQueryKey, t.QueryValue())
	return "/?" + q.Encode()
}

type TabButton struct {
	Label   string
	Href    string
	Pressed bool
}

// TabButtons returns the buttons in index order, with the active one pressed.
func TabButtons(active Tab, m *config.MeetSettings) []TabButton {
	return []TabButton{
		{Label: m.DemoLabel, Href: TabDemo.URL(), Pressed: active == TabDemo},
		{Label: m.CustomLabel, Href: TabCustom.URL(), Pressed: active == TabCustom},
	}
}
