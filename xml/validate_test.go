package xml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_RequiredMissing(t *testing.T) {
	doc := mustParse(t, `<order><id>7</id></order>`)
	violations := Validate(doc.RootElement(), []Rule{
		{Path: "id", Required: true},
		{Path: "customer", Required: true},
	})
	require.Len(t, violations, 1)
	require.Contains(t, violations[0], "customer")
}

func TestValidate_TypeAndRange(t *testing.T) {
	doc := mustParse(t, `<order><total>-5</total></order>`)
	violations := Validate(doc.RootElement(), []Rule{
		{Path: "total", Type: "float", Min: 0},
	})
	require.Len(t, violations, 1)
}

func TestValidate_Enum(t *testing.T) {
	doc := mustParse(t, `<order><status>pending</status></order>`)
	violations := Validate(doc.RootElement(), []Rule{
		{Path: "status", Enum: []string{"paid", "shipped"}},
	})
	require.Len(t, violations, 1)
}

func TestValidate_AllRulesPass(t *testing.T) {
	doc := mustParse(t, `<order><id>7</id><total>42.5</total></order>`)
	violations := Validate(doc.RootElement(), []Rule{
		{Path: "id", Required: true},
		{Path: "total", Type: "float", Min: 0, Max: 100},
	})
	require.Empty(t, violations)
}

type orderTarget struct {
	ID   string `xml:"attr,id"`
	Name string `xml:"name"`
}

func TestBind_AttrAndChildFields(t *testing.T) {
	doc := mustParse(t, `<order id="99"><name>widget</name></order>`)
	var target orderTarget
	err := Bind(doc.RootElement(), &target)
	require.NoError(t, err)
	require.Equal(t, "99", target.ID)
	require.Equal(t, "widget", target.Name)
}

func TestBind_RequiresElementNode(t *testing.T) {
	doc := mustParse(t, `<order id="99"/>`)
	elem := doc.RootElement()
	var target orderTarget
	err := Bind(elem, &target)
	require.NoError(t, err) // order is itself an Element, sanity baseline

	comment := mustParse(t, `<order><!--c--></order>`).RootElement().FirstChild()
	err = Bind(comment, &target)
	require.Error(t, err)
}
