package catalog2js_test

import (
	"context"
	"fmt"
	"log"
	"os"

	catalog2js "github.com/alnah/go-catalog2js"
)

func ExampleSplitList() {
	fmt.Printf("%q\n", catalog2js.SplitList(" Health; Census ;; "))
	fmt.Printf("%q\n", catalog2js.SplitList(""))
	// Output:
	// ["Health" "Census"]
	// []
}

func ExampleConverter_Render() {
	conv, err := catalog2js.NewConverter()
	if err != nil {
		log.Fatal(err)
	}

	html, err := conv.Render(context.Background(), "Updated **yearly**.\n\nSee the notes.")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(html)
	// Output:
	// <p>Updated <strong>yearly</strong>.</p><p>See the notes.</p>
}

func ExampleEncodeScript() {
	datasets := []catalog2js.Dataset{{
		ID:   "1",
		Name: "Census",
		Tags: []string{"people"},
	}}

	opts := catalog2js.ScriptOptions{Variable: "DATASETS", Global: "window"}
	if err := catalog2js.EncodeScript(os.Stdout, datasets, opts); err != nil {
		log.Fatal(err)
	}
	fmt.Println()
	// Output:
	// const DATASETS = [
	//   {
	//     "id": "1",
	//     "name": "Census",
	//     "description": "",
	//     "url": "",
	//     "categories": [],
	//     "source": "",
	//     "region": [],
	//     "type": "",
	//     "yearStart": "",
	//     "yearEnd": "",
	//     "tags": [
	//       "people"
	//     ],
	//     "invisibleTags": [],
	//     "additionalInfo": ""
	//   }
	// ];
	// window.DATASETS = DATASETS;
}

func ExampleConverter_Convert() {
	table := &catalog2js.Table{
		Columns: catalog2js.RequiredColumns,
		Rows: []catalog2js.Row{{
			"id":             "c1",
			"name":           "Census",
			"categories":     "Demography; Health",
			"additionalInfo": "*Annual* release",
		}},
	}

	conv, err := catalog2js.NewConverter()
	if err != nil {
		log.Fatal(err)
	}
	datasets, err := conv.Convert(context.Background(), table)
	if err != nil {
		log.Fatal(err)
	}

	d := datasets[0]
	fmt.Println(d.ID, d.Categories, d.AdditionalInfo)
	// Output:
	// c1 [Demography Health] <p><em>Annual</em> release</p>
}
