package pages

import (
	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomeTitle is the document title of the home page.
const HomeTitle = "Node.js SDK for ZBD API"

// HomeDescription is the meta description of the home page.
const HomeDescription = "Send and receive Bitcoin payments from Node.js with the @zbd/node SDK for the ZBD API."

// HeroSnippet is the example shown in the hero terminal.
const HeroSnippet = `
  // Import @zbd/node library
  import { zbd } from '@zbd/node';

  // Create ZBD instance
  const ZBD = new zbd(API_KEY);

  // Send Bitcoin payment
  const response = await ZBD.sendLightningAddressPayment({
    amount: 50000,
    lnAddress: 'andre@zbd.gg',
    comment: 'Lightning fast!',
  });

  // Done!
`

const (
	packageName   = "@zbd/node"
	repoURL       = "https://github.com/zebedeeio/zbd-node"
	starterRepo   = "https://github.com/zebedeeio/nextjs-zebedee-starter"
	dashboardDocs = "https://docs.zebedee.io/docs/docs/dashboard-project-api"
)

// HomeData is everything the home page needs.
type HomeData struct {
	Methods       []catalog.Method
	ActiveEntity  catalog.Entity
	PlaygroundURL string
	AssetPrefix   string
	// Static drops everything that needs the server, such as the entity
	// filter.
	Static bool
}

// Home renders the SDK product page.
func Home(d HomeData) g.Node {
	if d.AssetPrefix == "" {
		d.AssetPrefix = "/static"
	}
	return g.Group{
		hero(d),
		h.Main(
			h.Class("content"),
			h.ID("content"),
			setupSection(),
			authSection(),
			playgroundSection(d),
			goalsSection(),
			apiSection(d),
			communitySection(),
		),
		components.Footer(),
	}
}

func code(s string) g.Node { return h.Code(g.Text(s)) }

func pkg() g.Node { return code(packageName) }

func ext(href, text string) g.Node {
	return h.A(h.Href(href), h.Target("_blank"), g.Text(text))
}

func heading(id, text string) g.Node {
	return h.H2(h.ID(id), h.A(h.Href("#"+id), g.Text(text)))
}

func hero(d HomeData) g.Node {
	return h.Header(
		h.Class("hero"),
		h.Img(h.Src(d.AssetPrefix+"/img/zbd-node-logo.svg"), h.Alt("ZBD Logo"), h.Class("hero-logo")),
		h.Div(h.Class("hero-title"), h.H1(g.Text(HomeTitle))),
		h.Div(
			h.Class("hero-terminal"),
			components.CodeBlock(components.CodeBlockProps{
				ID:        "hero-snippet",
				Text:      HeroSnippet,
				Language:  "javascript",
				WrapLines: true,
			}),
		),
		h.Div(
			h.Class("hero-download"),
			components.DownloadButtons(
				components.Button{Label: "View SDK Docs", URL: "/#api"},
				components.Button{Label: "Open Playground", URL: d.PlaygroundURL},
			),
			h.A(h.Class("hero-other"), h.Href("#sdks"), g.Text("View other SDK options")),
		),
	)
}

func setupSection() g.Node {
	return h.Section(
		heading("setup", "Getting Started"),
		h.P(
			g.Text("The Node.js library for ZBD API is available under "),
			h.A(h.Href(repoURL), pkg()),
			g.Text(". When building tools with ZBD support we encourage you to include "),
			code("zbd"), g.Text(" in the "), code("keywords"), g.Text(" field in "),
			code("package.json"), g.Text("."),
		),
		h.P(
			g.Text("All you have to do to get started is install "), pkg(),
			g.Text(" as a dependency to your Node.js-based project. You can do so using "),
			code("npm"), g.Text(":"),
		),
		h.Pre(code("npm install @zbd/node --save")),
		h.P(g.Text("Or if you are using "), code("yarn"), g.Text(":")),
		h.Pre(code("yarn add @zbd/node")),
		h.P(g.Text("Now let's authenticate a specific Wallet with that ZBD Project's API Key.")),
	)
}

func authSection() g.Node {
	return h.Section(
		heading("auth", "Authentication"),
		h.P(
			g.Text("In order to authenticate your Project Wallet with the ZBD API, you will need to provide your ZBD Project's API Key to the "),
			pkg(), g.Text(" SDK. "),
			ext(dashboardDocs, "You can find your Project API Key in the ZBD Developer Dashboard"),
			g.Text("."),
		),
		h.P(g.Text("First you must import the "), code("zbd"),
			g.Text(" SDK client into your codebase, and then instantiate it with your Project API Key (replace YOUR_API_KEY_HERE below with your actual ZBD Project's API Key)."),
		),
		h.Pre(h.Code(
			g.Text("import { zbd } from '@zbd/node'\n\nconst ZBD = new zbd("),
			h.B(g.Text("YOUR_API_KEY_HERE")),
			g.Text(")\n\nconst payment = await ZBD.sendPayment( ... )\n"),
		)),
		h.P(
			g.Text("You're all set. Now let's move some money at the speed of the internet! Check the "),
			h.A(h.Href("/#playground"), g.Text("Dev Playground")), g.Text(" or the "),
			h.A(h.Href("/#api"), g.Text("SDK API Reference")),
			g.Text(" below for more information on how to use the "), pkg(), g.Text(" SDK."),
		),
	)
}

func playgroundSection(d HomeData) g.Node {
	return h.Section(
		heading("playground", "Dev Playground"),
		h.P(
			g.Text("The best way to get started using the "), pkg(),
			g.Text(" SDK for the ZBD API is to check out our Dev Playground -- a web-based tool that allows you to test and interact with the "),
			pkg(), g.Text(" library without writing any code."),
		),
		h.P(
			g.Text("The Dev Playground has built-in modules and source code showing the usage of the "), pkg(),
			g.Text(" SDK to perform Payins and Payouts in Bitcoin. From creating Charges, to editing Static QR codes, to sending Lightning Address payments -- there's a module for everything."),
		),
		h.P(
			g.Text("To make the most of the Dev Playground, clone the source code repository to your local machine and "),
			ext(starterRepo+"/blob/main/README.md", "follow the instructions in the README"),
			g.Text(" to get started."),
		),
		h.Pre(code("git clone "+starterRepo+".git")),
		h.P(
			g.Text("Once you've connected your ZBD API Key as a local environment variable and started the Next.js server, you can open your local Dev Playground at "),
			h.Code(ext("http://localhost:3000/playground", "localhost:3000/playground")),
			g.Text("."),
		),
		h.P(
			g.Text("You may also check out a LIVE running version of the Dev Playground "),
			ext(d.PlaygroundURL, "here"), g.Text("."),
		),
		h.Img(h.Src(d.AssetPrefix+"/img/playground.svg"), h.Alt("Dev Playground"), h.Class("playground-image")),
		h.Div(
			h.Class("hero-download"),
			components.DownloadButtons(components.Button{Label: "Open Dev Playground", URL: d.PlaygroundURL}),
		),
	)
}

func goalsSection() g.Node {
	return h.Section(
		heading("goals", packageName),
		h.P(
			g.Text("The goal of the project is to create a beautiful and extensible experience for developers using ZBD APIs in a Node.js environment. Our focus will be primarily around providing parity with "),
			ext("https://zbd.dev/api-reference/intro", "ZBD REST API"),
			g.Text(", as well as providing further stability for developers."),
		),
		h.P(g.Text("In the future, we anticipate adding Node.js-only APIs to this SDK. We also anticipate the community will come up with innovative additions to enhance what could be the simplest and most powerful Bitcoin payments API.")),
	)
}

func apiSection(d HomeData) g.Node {
	return h.Section(
		heading("api", "API Reference"),
		h.P(
			g.Text("Below is a comprehensive list of the methods and functions available in the "), pkg(),
			g.Text(" SDK. These methods are ONLY available to the "), code("zbd"),
			g.Text(" client instance after it's been properly authenticated with a Project's API Key."),
		),
		methodsTable(d),
	)
}

func methodsTable(d HomeData) g.Node {
	if d.Static {
		return components.StaticMethodsTable(d.Methods)
	}
	return components.MethodsTable(d.Methods, d.ActiveEntity)
}

func communitySection() g.Node {
	return h.Section(
		heading("community", "Community Support"),
		h.P(
			g.Text("Feature Request? Bugfix? Recommendations? We're all ears! Head on over to the "),
			ext(repoURL+"/issues", "@zbd/node Issues"),
			g.Text(" page and submit one. We also welcome Pull Requests and other contributions to the library."),
		),
		h.Div(
			h.Class("hero-download"),
			h.ID("sdks"),
			components.DownloadButtons(components.Button{Label: "SDK Source Code", URL: repoURL + "/"}),
			h.A(h.Class("hero-other"), h.Href("https://github.com/zebedeeio"), h.Target("_blank"), g.Text("View other ZBD GitHub repositories")),
		),
	)
}
