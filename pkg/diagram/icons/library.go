package icons

// library maps icon names to SVG fragments centered on the origin.
// Use-case icons span 48×48 user units; the framework icon is larger.
var library = map[string]string{
	// brain with gears
	"ai_framework": `<g transform="translate(-40, -40) scale(0.8)">
		<circle cx="50" cy="50" r="35" fill="none" stroke="white" stroke-width="2"/>
		<path d="M35 50 Q35 35 50 35 Q65 35 65 50 Q65 65 50 65 Q35 65 35 50" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="50" cy="50" r="8" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="75" cy="35" r="12" fill="none" stroke="white" stroke-width="2"/>
		<line x1="75" y1="29" x2="75" y2="41" stroke="white" stroke-width="2"/>
		<line x1="69" y1="35" x2="81" y2="35" stroke="white" stroke-width="2"/>
		<circle cx="80" cy="65" r="8" fill="none" stroke="white" stroke-width="2"/>
		<path d="M25 45 L20 40 M25 55 L20 60 M40 30 L35 22 M60 30 L65 22" stroke="white" stroke-width="2" stroke-linecap="round"/>
	</g>`,
	// document with pencil
	"task_writing": `<g transform="translate(-24, -24)">
		<rect x="8" y="4" width="28" height="36" rx="2" fill="none" stroke="white" stroke-width="2"/>
		<line x1="14" y1="12" x2="30" y2="12" stroke="white" stroke-width="2"/>
		<line x1="14" y1="18" x2="30" y2="18" stroke="white" stroke-width="2"/>
		<line x1="14" y1="24" x2="24" y2="24" stroke="white" stroke-width="2"/>
		<path d="M32 28 L40 20 L44 24 L36 32 L32 32 Z" fill="none" stroke="white" stroke-width="2"/>
	</g>`,
	// stacked list beside a database
	"backlog": `<g transform="translate(-24, -24)">
		<rect x="4" y="4" width="24" height="8" rx="4" fill="none" stroke="white" stroke-width="2"/>
		<rect x="4" y="16" width="24" height="8" rx="4" fill="none" stroke="white" stroke-width="2"/>
		<rect x="4" y="28" width="24" height="8" rx="4" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="38" cy="28" r="10" fill="none" stroke="white" stroke-width="2"/>
		<ellipse cx="38" cy="24" rx="10" ry="4" fill="none" stroke="white" stroke-width="2"/>
	</g>`,
	// two people talking
	"interview": `<g transform="translate(-24, -24)">
		<circle cx="14" cy="14" r="8" fill="none" stroke="white" stroke-width="2"/>
		<path d="M4 38 Q4 28 14 28 Q24 28 24 38" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="34" cy="14" r="8" fill="none" stroke="white" stroke-width="2"/>
		<path d="M24 38 Q24 28 34 28 Q44 28 44 38" fill="none" stroke="white" stroke-width="2"/>
		<rect x="20" y="6" width="8" height="6" rx="2" fill="none" stroke="white" stroke-width="2"/>
		<path d="M24 12 L22 16 L26 16 Z" fill="white"/>
	</g>`,
	// building blocks
	"architecture": `<g transform="translate(-24, -24)">
		<rect x="4" y="24" width="16" height="16" rx="2" fill="none" stroke="white" stroke-width="2"/>
		<rect x="24" y="24" width="16" height="16" rx="2" fill="none" stroke="white" stroke-width="2"/>
		<rect x="14" y="4" width="16" height="16" rx="2" fill="none" stroke="white" stroke-width="2"/>
		<line x1="22" y1="20" x2="12" y2="24" stroke="white" stroke-width="2"/>
		<line x1="22" y1="20" x2="32" y2="24" stroke="white" stroke-width="2"/>
	</g>`,
	// target
	"specifications": `<g transform="translate(-24, -24)">
		<circle cx="24" cy="24" r="20" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="24" cy="24" r="12" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="24" cy="24" r="4" fill="white"/>
	</g>`,
	// wireframe
	"ui_design": `<g transform="translate(-24, -24)">
		<rect x="4" y="4" width="36" height="28" rx="2" fill="none" stroke="white" stroke-width="2"/>
		<rect x="8" y="8" width="12" height="8" rx="1" fill="none" stroke="white" stroke-width="2"/>
		<line x1="8" y1="22" x2="36" y2="22" stroke="white" stroke-width="2"/>
		<line x1="8" y1="26" x2="28" y2="26" stroke="white" stroke-width="2"/>
		<circle cx="34" cy="12" r="4" fill="none" stroke="white" stroke-width="2"/>
	</g>`,
	// open book
	"documentation": `<g transform="translate(-24, -24)">
		<path d="M4 8 Q4 4 12 4 L24 4 L24 40 L12 40 Q4 40 4 36 Z" fill="none" stroke="white" stroke-width="2"/>
		<path d="M24 4 L36 4 Q44 4 44 8 L44 36 Q44 40 36 40 L24 40" fill="none" stroke="white" stroke-width="2"/>
		<line x1="24" y1="4" x2="24" y2="40" stroke="white" stroke-width="2"/>
		<line x1="10" y1="12" x2="18" y2="12" stroke="white" stroke-width="2"/>
		<line x1="10" y1="18" x2="18" y2="18" stroke="white" stroke-width="2"/>
	</g>`,
	// code brackets
	"code_generation": `<g transform="translate(-24, -24)">
		<path d="M16 8 L4 24 L16 40" fill="none" stroke="white" stroke-width="2" stroke-linecap="round"/>
		<path d="M32 8 L44 24 L32 40" fill="none" stroke="white" stroke-width="2" stroke-linecap="round"/>
		<line x1="28" y1="4" x2="20" y2="44" stroke="white" stroke-width="2" stroke-linecap="round"/>
	</g>`,
	// magnifier over code
	"codebase": `<g transform="translate(-24, -24)">
		<circle cx="20" cy="20" r="16" fill="none" stroke="white" stroke-width="2"/>
		<line x1="32" y1="32" x2="44" y2="44" stroke="white" stroke-width="3" stroke-linecap="round"/>
		<path d="M14 16 L10 20 L14 24" fill="none" stroke="white" stroke-width="2" stroke-linecap="round"/>
		<path d="M26 16 L30 20 L26 24" fill="none" stroke="white" stroke-width="2" stroke-linecap="round"/>
	</g>`,
	// cycle arrows
	"migration": `<g transform="translate(-24, -24)">
		<path d="M24 8 A16 16 0 0 1 40 24" fill="none" stroke="white" stroke-width="2"/>
		<path d="M40 24 L36 18 M40 24 L34 26" stroke="white" stroke-width="2" stroke-linecap="round"/>
		<path d="M24 40 A16 16 0 0 1 8 24" fill="none" stroke="white" stroke-width="2"/>
		<path d="M8 24 L12 30 M8 24 L14 22" stroke="white" stroke-width="2" stroke-linecap="round"/>
		<rect x="18" y="18" width="12" height="12" rx="2" fill="none" stroke="white" stroke-width="2"/>
	</g>`,
	// robot
	"agentic": `<g transform="translate(-24, -24)">
		<rect x="12" y="12" width="24" height="20" rx="4" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="20" cy="20" r="3" fill="white"/>
		<circle cx="28" cy="20" r="3" fill="white"/>
		<line x1="18" y1="28" x2="30" y2="28" stroke="white" stroke-width="2" stroke-linecap="round"/>
		<line x1="24" y1="6" x2="24" y2="12" stroke="white" stroke-width="2"/>
		<circle cx="24" cy="4" r="2" fill="white"/>
		<line x1="8" y1="20" x2="12" y2="20" stroke="white" stroke-width="2"/>
		<line x1="36" y1="20" x2="40" y2="20" stroke="white" stroke-width="2"/>
	</g>`,
	// git merge
	"pr_automation": `<g transform="translate(-24, -24)">
		<circle cx="12" cy="12" r="4" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="36" cy="12" r="4" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="24" cy="36" r="4" fill="none" stroke="white" stroke-width="2"/>
		<line x1="12" y1="16" x2="12" y2="28" stroke="white" stroke-width="2"/>
		<line x1="36" y1="16" x2="36" y2="28" stroke="white" stroke-width="2"/>
		<path d="M12 28 Q12 32 24 32 Q36 32 36 28" fill="none" stroke="white" stroke-width="2"/>
		<line x1="24" y1="32" x2="24" y2="32" stroke="white" stroke-width="2"/>
	</g>`,
	// eye with checkmark
	"code_review": `<g transform="translate(-24, -24)">
		<ellipse cx="24" cy="24" rx="20" ry="12" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="24" cy="24" r="8" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="24" cy="24" r="3" fill="white"/>
		<path d="M32 32 L36 36 L44 24" fill="none" stroke="white" stroke-width="2" stroke-linecap="round"/>
	</g>`,
	// shield with check
	"quality_gates": `<g transform="translate(-24, -24)">
		<path d="M24 4 L40 10 L40 24 Q40 40 24 44 Q8 40 8 24 L8 10 Z" fill="none" stroke="white" stroke-width="2"/>
		<path d="M16 24 L22 30 L32 18" fill="none" stroke="white" stroke-width="2" stroke-linecap="round"/>
	</g>`,
	// wrench with gear
	"self_healing": `<g transform="translate(-24, -24)">
		<circle cx="32" cy="16" r="10" fill="none" stroke="white" stroke-width="2"/>
		<line x1="32" y1="10" x2="32" y2="22" stroke="white" stroke-width="2"/>
		<line x1="26" y1="16" x2="38" y2="16" stroke="white" stroke-width="2"/>
		<path d="M8 40 L16 32 L20 36 L12 44 Z" fill="none" stroke="white" stroke-width="2"/>
		<path d="M18 30 Q24 24 26 26" fill="none" stroke="white" stroke-width="2"/>
	</g>`,
	// document with list
	"changelog": `<g transform="translate(-24, -24)">
		<rect x="8" y="4" width="32" height="40" rx="2" fill="none" stroke="white" stroke-width="2"/>
		<line x1="14" y1="14" x2="34" y2="14" stroke="white" stroke-width="2"/>
		<line x1="14" y1="22" x2="34" y2="22" stroke="white" stroke-width="2"/>
		<line x1="14" y1="30" x2="28" y2="30" stroke="white" stroke-width="2"/>
		<circle cx="14" cy="14" r="0" fill="white"/>
	</g>`,
	// megaphone
	"communication": `<g transform="translate(-24, -24)">
		<path d="M8 20 L8 28 L16 28 L32 40 L32 8 L16 20 Z" fill="none" stroke="white" stroke-width="2"/>
		<path d="M36 18 Q44 24 36 30" fill="none" stroke="white" stroke-width="2"/>
		<path d="M38 14 Q48 24 38 34" fill="none" stroke="white" stroke-width="2"/>
	</g>`,
	// rocket
	"deployment": `<g transform="translate(-24, -24)">
		<path d="M24 4 Q36 8 40 20 L32 28 L24 36 L16 28 L8 20 Q12 8 24 4" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="24" cy="18" r="4" fill="none" stroke="white" stroke-width="2"/>
		<path d="M12 32 L8 44 L16 36" fill="none" stroke="white" stroke-width="2"/>
		<path d="M36 32 L40 44 L32 36" fill="none" stroke="white" stroke-width="2"/>
	</g>`,
	// warning triangle
	"incident": `<g transform="translate(-24, -24)">
		<path d="M24 8 L40 36 L8 36 Z" fill="none" stroke="white" stroke-width="2" stroke-linejoin="round"/>
		<line x1="24" y1="18" x2="24" y2="26" stroke="white" stroke-width="2" stroke-linecap="round"/>
		<circle cx="24" cy="30" r="1.5" fill="white"/>
	</g>`,
	// brackets with wrench
	"refactoring": `<g transform="translate(-24, -24)">
		<path d="M8 8 L16 16 L8 24" fill="none" stroke="white" stroke-width="2" stroke-linecap="round"/>
		<path d="M24 8 L16 16 L24 24" fill="none" stroke="white" stroke-width="2" stroke-linecap="round"/>
		<path d="M28 28 L40 40" stroke="white" stroke-width="3" stroke-linecap="round"/>
		<circle cx="24" cy="24" r="8" fill="none" stroke="white" stroke-width="2"/>
	</g>`,
	// package with up arrow
	"upgrades": `<g transform="translate(-24, -24)">
		<rect x="8" y="16" width="24" height="24" rx="2" fill="none" stroke="white" stroke-width="2"/>
		<line x1="8" y1="24" x2="32" y2="24" stroke="white" stroke-width="2"/>
		<path d="M36 28 L36 8 L28 16 M36 8 L44 16" fill="none" stroke="white" stroke-width="2" stroke-linecap="round"/>
	</g>`,
	// trend chart
	"tech_debt": `<g transform="translate(-24, -24)">
		<rect x="4" y="4" width="40" height="32" rx="2" fill="none" stroke="white" stroke-width="2"/>
		<polyline points="10,28 18,20 26,26 34,14" fill="none" stroke="white" stroke-width="2" stroke-linecap="round"/>
		<circle cx="34" cy="14" r="3" fill="white"/>
	</g>`,
	// connected nodes
	"cross_repo": `<g transform="translate(-24, -24)">
		<circle cx="12" cy="12" r="8" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="36" cy="12" r="8" fill="none" stroke="white" stroke-width="2"/>
		<circle cx="24" cy="36" r="8" fill="none" stroke="white" stroke-width="2"/>
		<line x1="18" y1="16" x2="30" y2="16" stroke="white" stroke-width="2"/>
		<line x1="14" y1="20" x2="20" y2="30" stroke="white" stroke-width="2"/>
		<line x1="34" y1="20" x2="28" y2="30" stroke="white" stroke-width="2"/>
	</g>`,
}
