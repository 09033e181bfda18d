package kdbx

import (
	"github.com/tobischo/gokeepasslib/v3"
	"github.com/tobischo/gokeepasslib/v3/wrappers"

	"github.com/mesh-intelligence/kpwrite/pkg/types"
)

// String-field keys of the KDBX entry schema.
const (
	keyTitle    = "Title"
	keyUsername = "UserName"
	keyPassword = "Password"
	keyURL      = "URL"
	keyNotes    = "Notes"
)

func treeFromRoot(root *gokeepasslib.Group) *types.Tree {
	return types.NewTree(folderFromGroup(root))
}

func folderFromGroup(g *gokeepasslib.Group) *types.Folder {
	f := &types.Folder{
		ID:    types.Identifier(g.UUID),
		Name:  g.Name,
		Times: timesFromKDBX(g.Times),
	}
	for i := range g.Groups {
		f.AddSubfolder(folderFromGroup(&g.Groups[i]))
	}
	for i := range g.Entries {
		f.AddEntry(entryFromKDBX(&g.Entries[i]))
	}
	return f
}

func entryFromKDBX(e *gokeepasslib.Entry) *types.Entry {
	entry := &types.Entry{
		ID:       types.Identifier(e.UUID),
		Title:    e.GetContent(keyTitle),
		Username: e.GetContent(keyUsername),
		URL:      e.GetContent(keyURL),
		Notes:    e.GetContent(keyNotes),
		Times:    timesFromKDBX(e.Times),
	}
	entry.Password.Value = e.GetContent(keyPassword)
	for _, v := range e.Values {
		if v.Key == keyPassword {
			entry.Password.Protected = v.Value.Protected.Bool
			break
		}
	}
	return entry
}

func groupFromFolder(f *types.Folder) gokeepasslib.Group {
	g := gokeepasslib.NewGroup()
	g.UUID = gokeepasslib.UUID(f.ID)
	g.Name = f.Name
	g.Times = timesToKDBX(f.Times)
	for _, sub := range f.Subfolders {
		g.Groups = append(g.Groups, groupFromFolder(sub))
	}
	for _, e := range f.Entries {
		g.Entries = append(g.Entries, entryToKDBX(e))
	}
	return g
}

func entryToKDBX(e *types.Entry) gokeepasslib.Entry {
	ke := gokeepasslib.NewEntry()
	ke.UUID = gokeepasslib.UUID(e.ID)
	ke.Times = timesToKDBX(e.Times)
	ke.Values = append(ke.Values,
		gokeepasslib.ValueData{Key: keyTitle, Value: gokeepasslib.V{Content: e.Title}},
		gokeepasslib.ValueData{Key: keyUsername, Value: gokeepasslib.V{Content: e.Username}},
		gokeepasslib.ValueData{
			Key: keyPassword,
			Value: gokeepasslib.V{
				Content:   e.Password.Value,
				Protected: wrappers.NewBoolWrapper(e.Password.Protected),
			},
		},
	)
	if e.URL != "" {
		ke.Values = append(ke.Values, gokeepasslib.ValueData{Key: keyURL, Value: gokeepasslib.V{Content: e.URL}})
	}
	if e.Notes != "" {
		ke.Values = append(ke.Values, gokeepasslib.ValueData{Key: keyNotes, Value: gokeepasslib.V{Content: e.Notes}})
	}
	return ke
}

func timesFromKDBX(td gokeepasslib.TimeData) types.Times {
	t := types.Times{
		Expires:    td.Expires.Bool,
		UsageCount: int(td.UsageCount),
	}
	if td.CreationTime != nil {
		t.Created = td.CreationTime.Time
	}
	if td.LastModificationTime != nil {
		t.Modified = td.LastModificationTime.Time
	}
	if td.LastAccessTime != nil {
		t.Accessed = td.LastAccessTime.Time
	}
	if td.LocationChanged != nil {
		t.LocationChanged = td.LocationChanged.Time
	}
	if td.ExpiryTime != nil {
		t.Expiry = td.ExpiryTime.Time
	}
	return t
}

func timesToKDBX(t types.Times) gokeepasslib.TimeData {
	created := wrappers.TimeWrapper{Time: t.Created}
	modified := wrappers.TimeWrapper{Time: t.Modified}
	accessed := wrappers.TimeWrapper{Time: t.Accessed}
	moved := wrappers.TimeWrapper{Time: t.LocationChanged}
	expiry := wrappers.TimeWrapper{Time: t.Expiry}
	return gokeepasslib.TimeData{
		CreationTime:         &created,
		LastModificationTime: &modified,
		LastAccessTime:       &accessed,
		LocationChanged:      &moved,
		ExpiryTime:           &expiry,
		Expires:              wrappers.NewBoolWrapper(t.Expires),
		UsageCount:           int64(t.UsageCount),
	}
}
