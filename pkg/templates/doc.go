// Package templates holds the built-in contract archetypes as pure data:
// artist collaboration, music licensing, touring, sample clearance, and
// work-for-hire. All behavioural logic lives in the shared engine packages
// (validate, render); an archetype is only a TemplateDefinition value. The
// package also provides the authoring lint and a loader for archetypes kept
// as YAML or JSON files.
package templates
